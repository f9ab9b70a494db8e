package model

import (
	// 外部依赖
	"time"

	datatypes "gorm.io/datatypes"
)

type GigStatus string

const (
	GigOpen      GigStatus = "open"
	GigClosed    GigStatus = "closed"
	GigArchived  GigStatus = "archived"
	GigCancelled GigStatus = "cancelled"
	GigHold      GigStatus = "hold"
)

func (s GigStatus) Valid() bool {
	switch s {
	case GigOpen, GigClosed, GigArchived, GigCancelled, GigHold:
		return true
	}
	return false
}

type Gig struct {
	BaseModel
	LabID               int64          `gorm:"not null;index:idx_gigs_lab_id" json:"lab_id"`
	Title               string         `gorm:"type:varchar(255);not null" json:"title"`
	Description         string         `gorm:"type:text;not null" json:"description"`
	SkillsRequired      string         `gorm:"type:text" json:"skills_required"`
	EligibilityCriteria datatypes.JSON `gorm:"type:jsonb" json:"eligibility_criteria"`
	Status              GigStatus      `gorm:"type:varchar(32);not null;default:'open';index:idx_gigs_status" json:"status"`
	ApplicationDeadline *time.Time     `json:"application_deadline"`
	MaxApplications     int            `gorm:"not null;default:10" json:"max_applications"`
	CreatedBy           int64          `gorm:"not null;index:idx_gigs_created_by" json:"created_by"`
}

func (*Gig) TableName() string { return "gigs" }

type ProposalStatus string

const (
	ProposalDraft       ProposalStatus = "draft"
	ProposalSubmitted   ProposalStatus = "submitted"
	ProposalUnderReview ProposalStatus = "under_review"
	ProposalApproved    ProposalStatus = "approved"
	ProposalRejected    ProposalStatus = "rejected"
)

// Terminal 审批完成后的终态，不可再变更
func (s ProposalStatus) Terminal() bool {
	return s == ProposalApproved || s == ProposalRejected
}

type Proposal struct {
	BaseModel
	GigID            int64          `gorm:"not null;index:idx_proposals_gig_id" json:"gig_id"`
	LabID            int64          `gorm:"not null;index:idx_proposals_lab_id" json:"lab_id"`
	StudentID        int64          `gorm:"not null;index:idx_proposals_student_id" json:"student_id"`
	Title            string         `gorm:"type:varchar(255);not null" json:"title"`
	ProblemStatement string         `gorm:"type:text;not null" json:"problem_statement"`
	Approach         string         `gorm:"type:text;not null" json:"approach"`
	ExpectedOutcome  string         `gorm:"type:text;not null" json:"expected_outcome"`
	Timeline         datatypes.JSON `gorm:"type:jsonb" json:"timeline"`
	EquipmentNeeded  bool           `gorm:"not null;default:false" json:"equipment_needed"`
	GithubLink       *string        `gorm:"type:text" json:"github_link"`
	AttachmentURL    *string        `gorm:"type:text" json:"attachment_url"`
	Status           ProposalStatus `gorm:"type:varchar(32);not null;default:'draft';index:idx_proposals_status" json:"status"`
	ReviewComments   *string        `gorm:"type:text" json:"review_comments"`
	Score            *float64       `gorm:"type:numeric(5,2)" json:"score"`
	SubmittedAt      time.Time      `gorm:"not null" json:"submitted_at"`
	ReviewedAt       *time.Time     `json:"reviewed_at"`
}

func (*Proposal) TableName() string { return "proposals" }
