package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// บทบาทผู้ใช้งาน
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User ผู้ใช้งานระบบ (ทั้ง volunteer และ admin)
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"` // ✅ ส่งมาได้จาก frontend, แต่ไม่ส่งกลับ
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// RegisterRequest คำขอสมัครสมาชิก
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1" example:"Somchai J."`
	Email    string `json:"email" validate:"required,email" example:"somchai@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"secret1234"`
}

// LoginRequest คำขอเข้าสู่ระบบ
type LoginRequest struct {
	Email    string `json:"email" example:"somchai@example.com"`
	Password string `json:"password" example:"secret1234"`
}
