package gig

import (
	// 外部依赖
	"time"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	code "github.com/srinivas-tce/labgigs/pkg/common/code"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
	repo "github.com/srinivas-tce/labgigs/pkg/repo"
)

// CriterionDataType 资格条件录入值的类型
type CriterionDataType string

const (
	DataPercentage CriterionDataType = "percentage"
	DataInteger    CriterionDataType = "integer"
	DataBoolean    CriterionDataType = "boolean"
	DataText       CriterionDataType = "text"
)

type CriterionType string

const (
	CriterionManual         CriterionType = "manual"
	CriterionMultipleChoice CriterionType = "multiple_choice"
)

// Criterion 单条资格条件。
// Options 仅在 type=multiple_choice 时有意义
type Criterion struct {
	Name     string            `json:"name" binding:"required"`
	DataType CriterionDataType `json:"data_type" binding:"required"`
	Type     CriterionType     `json:"type" binding:"required"`
	Options  []string          `json:"options,omitempty"`
}

func (c *Criterion) Validate() error {
	switch c.DataType {
	case DataPercentage, DataInteger, DataBoolean, DataText:
	default:
		return code.CriteriaErr.WithMsgf("unknown data_type: %s", c.DataType)
	}
	switch c.Type {
	case CriterionManual:
	case CriterionMultipleChoice:
		if len(c.Options) == 0 {
			return code.CriteriaErr.WithMsg("multiple_choice requires options")
		}
	default:
		return code.CriteriaErr.WithMsgf("unknown type: %s", c.Type)
	}
	return nil
}

type CreateReq struct {
	LabUUID             uuid.UUID    `json:"lab_uuid" binding:"required"`
	Title               string       `json:"title" binding:"required"`
	Description         string       `json:"description" binding:"required"`
	SkillsRequired      string       `json:"skills_required"`
	EligibilityCriteria []*Criterion `json:"eligibility_criteria"`
	ApplicationDeadline *time.Time   `json:"application_deadline"`
	MaxApplications     int          `json:"max_applications"`
}

type CreateResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type ListReq struct {
	common.PageReq

	Status *model.GigStatus `form:"status"`
}

// LabSummary 嵌在任务返回里的实验室概要
type LabSummary struct {
	UUID     uuid.UUID `json:"uuid"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Location string    `json:"location"`
}

type UserSummary struct {
	UUID  uuid.UUID   `json:"uuid"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  common.Role `json:"role"`
}

type GigSummary struct {
	UUID                uuid.UUID               `json:"uuid"`
	Title               string                  `json:"title"`
	Description         string                  `json:"description"`
	SkillsRequired      string                  `json:"skills_required"`
	Status              model.GigStatus         `json:"status"`
	ApplicationDeadline *time.Time              `json:"application_deadline"`
	MaxApplications     int                     `json:"max_applications"`
	CreatedAt           time.Time               `json:"created_at"`
	Lab                 *LabSummary             `json:"lab"`
	Creator             *UserSummary            `json:"creator"`
	Proposals           *repo.ProposalHistogram `json:"proposals"`
}

type InfoReq struct {
	GigUUID uuid.UUID `uri:"gig_uuid" binding:"required"`
}

type ProposalItem struct {
	UUID        uuid.UUID            `json:"uuid"`
	Title       string               `json:"title"`
	Status      model.ProposalStatus `json:"status"`
	Score       *float64             `json:"score"`
	SubmittedAt time.Time            `json:"submitted_at"`
	ReviewedAt  *time.Time           `json:"reviewed_at"`
	Student     *UserSummary         `json:"student"`
}

type InfoResp struct {
	GigSummary

	EligibilityCriteria []*Criterion    `json:"eligibility_criteria"`
	ProposalList        []*ProposalItem `json:"proposal_list"`
}

type UpdateReq struct {
	GigUUID             uuid.UUID        `json:"gig_uuid" binding:"required"`
	Title               *string          `json:"title"`
	Description         *string          `json:"description"`
	SkillsRequired      *string          `json:"skills_required"`
	EligibilityCriteria []*Criterion     `json:"eligibility_criteria"`
	Status              *model.GigStatus `json:"status"`
	ApplicationDeadline *time.Time       `json:"application_deadline"`
	MaxApplications     *int             `json:"max_applications"`
}
