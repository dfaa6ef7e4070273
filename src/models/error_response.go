package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

// FieldError ข้อความ validation รายฟิลด์
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse โครงสร้าง Error พร้อมรายละเอียดรายฟิลด์
type ValidationErrorResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}
