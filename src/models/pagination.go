package models

import "math"

// PaginationParams ใช้เก็บค่าการแบ่งหน้า, ค้นหา และเรียงลำดับ
type PaginationParams struct {
	Page   int    `json:"page" query:"page"  example:"1"`      // หมายเลขหน้าที่ต้องการ
	Limit  int    `json:"limit" query:"limit" example:"6"`     // จำนวนรายการต่อหน้า
	Search string `json:"search" query:"search" example:""`    // คำค้นหา (Optional)
	SortBy string `json:"sortBy" query:"sortBy" example:"date"` // ฟิลด์ที่ใช้เรียงลำดับ
	Order  string `json:"order" query:"order" example:"asc"`   // ทิศทางการเรียง (asc/desc)
}

// PaginatedResponse โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination หน้า listing ใช้ 6 รายการต่อหน้า
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  6,
		Search: "",
		SortBy: "date",
		Order:  "asc",
	}
}

// NewPaginatedResponse สร้าง PaginatedResponse ใหม่
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := TotalPages(total, params.Limit)

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// TotalPages คำนวณจำนวนหน้าทั้งหมด อย่างน้อย 1 หน้าเสมอ
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Normalize บังคับ page/limit ให้อยู่ในช่วงที่ใช้งานได้
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 6
	}
}
