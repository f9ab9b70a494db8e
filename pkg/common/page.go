package common

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

type PageReq struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

func (p *PageReq) Normalize() {
	if p.Page <= 0 {
		p.Page = defaultPage
	}
	if p.PageSize <= 0 || p.PageSize > maxPageSize {
		p.PageSize = defaultPageSize
	}
}

func (p *PageReq) Offest() int {
	return (p.Page - 1) * p.PageSize
}

type PageResp[T any] struct {
	Data     T     `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
