package proposal

import (
	// 外部依赖
	"time"

	datatypes "gorm.io/datatypes"

	// 内部引用
	common "github.com/srinivas-tce/labgigs/pkg/common"
	uuid "github.com/srinivas-tce/labgigs/pkg/common/uuid"
	model "github.com/srinivas-tce/labgigs/pkg/model"
)

type SubmitReq struct {
	GigUUID          uuid.UUID      `json:"gig_uuid" binding:"required"`
	Title            string         `json:"title" binding:"required"`
	ProblemStatement string         `json:"problem_statement" binding:"required"`
	Approach         string         `json:"approach" binding:"required"`
	ExpectedOutcome  string         `json:"expected_outcome" binding:"required"`
	Timeline         datatypes.JSON `json:"timeline"`
	EquipmentNeeded  bool           `json:"equipment_needed"`
	GithubLink       *string        `json:"github_link"`
	AttachmentURL    *string        `json:"attachment_url"`
}

type SubmitResp struct {
	UUID        uuid.UUID            `json:"uuid"`
	Status      model.ProposalStatus `json:"status"`
	SubmittedAt time.Time            `json:"submitted_at"`
}

type ReviewReq struct {
	ProposalUUID   uuid.UUID            `json:"proposal_uuid" binding:"required"`
	Status         model.ProposalStatus `json:"status" binding:"required"`
	ReviewComments *string              `json:"review_comments"`
	Score          *float64             `json:"score" binding:"omitempty,gte=0,lte=100"`
}

type ListMineReq struct {
	common.PageReq
}

type GigBrief struct {
	UUID   uuid.UUID       `json:"uuid"`
	Title  string          `json:"title"`
	Status model.GigStatus `json:"status"`
}

type ProposalDetail struct {
	UUID             uuid.UUID            `json:"uuid"`
	Title            string               `json:"title"`
	ProblemStatement string               `json:"problem_statement"`
	Approach         string               `json:"approach"`
	ExpectedOutcome  string               `json:"expected_outcome"`
	Timeline         datatypes.JSON       `json:"timeline"`
	EquipmentNeeded  bool                 `json:"equipment_needed"`
	GithubLink       *string              `json:"github_link"`
	AttachmentURL    *string              `json:"attachment_url"`
	Status           model.ProposalStatus `json:"status"`
	ReviewComments   *string              `json:"review_comments"`
	Score            *float64             `json:"score"`
	SubmittedAt      time.Time            `json:"submitted_at"`
	ReviewedAt       *time.Time           `json:"reviewed_at"`
	Gig              *GigBrief            `json:"gig"`
}
