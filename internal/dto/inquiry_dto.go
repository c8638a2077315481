package dto

type InquiryFilter struct {
	Status string `form:"status"`
}

type CreateInquiryRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	CarID   *uint   `json:"car_id"`
	Message string  `json:"message" binding:"required"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending contacted closed"`
}
