package dto

// ErrorResponse 는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
// Errors 는 필드 단위 검증 실패 메시지 목록이고, Error 는 500 응답에서
// 프로덕션 모드가 아닐 때만 채워지는 내부 에러 텍스트다.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message" example:"Validation failed"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}
