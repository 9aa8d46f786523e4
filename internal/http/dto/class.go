package dto

type TeacherRequest struct {
	Name     string  `json:"name" binding:"required,max=50"`
	Subject  string  `json:"subject" binding:"max=50"`
	Bio      *string `json:"bio,omitempty" binding:"omitempty,max=1000"`
	PhotoKey *string `json:"photo_key,omitempty"`
}

type ClassRequest struct {
	TeacherID   *int64 `json:"teacher_id,omitempty"`
	Name        string `json:"name" binding:"required,max=100"`
	Subject     string `json:"subject" binding:"max=50"`
	TargetGrade string `json:"target_grade" binding:"max=50"`
	Schedule    string `json:"schedule"`
	Tuition     *int32 `json:"tuition,omitempty" binding:"omitempty,min=0"`
	Capacity    *int32 `json:"capacity,omitempty" binding:"omitempty,min=1"`
}
