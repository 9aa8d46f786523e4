package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

// ClassHandler serves both teachers and classes; they share a permission.
type ClassHandler struct {
	classService service.ClassService
}

func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

func (h *ClassHandler) ListTeachers(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	teachers, err := h.classService.ListTeachers(c.Request.Context(), academyID)
	if err != nil {
		respondError(c, err)
		return
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}
	c.JSON(http.StatusOK, teachers)
}

func (h *ClassHandler) CreateTeacher(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	teacher, err := h.classService.CreateTeacher(c.Request.Context(), currentUser(c).ID, academyID, teacherInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, teacher)
}

func (h *ClassHandler) UpdateTeacher(c *gin.Context) {
	ids, err := pathIDs(c, "id", "teacherId")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	teacher, err := h.classService.UpdateTeacher(c.Request.Context(), currentUser(c).ID, ids[0], ids[1], teacherInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teacher)
}

func (h *ClassHandler) DeleteTeacher(c *gin.Context) {
	ids, err := pathIDs(c, "id", "teacherId")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.classService.DeleteTeacher(c.Request.Context(), currentUser(c).ID, ids[0], ids[1]); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClassHandler) ListClasses(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	classes, err := h.classService.ListClasses(c.Request.Context(), academyID)
	if err != nil {
		respondError(c, err)
		return
	}
	if classes == nil {
		classes = []service.ClassView{}
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) CreateClass(c *gin.Context) {
	academyID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	class, err := h.classService.CreateClass(c.Request.Context(), currentUser(c).ID, academyID, classInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

func (h *ClassHandler) UpdateClass(c *gin.Context) {
	ids, err := pathIDs(c, "id", "classId")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	class, err := h.classService.UpdateClass(c.Request.Context(), currentUser(c).ID, ids[0], ids[1], classInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) DeleteClass(c *gin.Context) {
	ids, err := pathIDs(c, "id", "classId")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.classService.DeleteClass(c.Request.Context(), currentUser(c).ID, ids[0], ids[1]); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func teacherInput(req dto.TeacherRequest) service.TeacherInput {
	return service.TeacherInput{
		Name:     req.Name,
		Subject:  req.Subject,
		Bio:      req.Bio,
		PhotoKey: req.PhotoKey,
	}
}

func classInput(req dto.ClassRequest) service.ClassInput {
	return service.ClassInput{
		TeacherID:   req.TeacherID,
		Name:        req.Name,
		Subject:     req.Subject,
		TargetGrade: req.TargetGrade,
		Schedule:    req.Schedule,
		Tuition:     req.Tuition,
		Capacity:    req.Capacity,
	}
}
