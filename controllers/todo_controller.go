package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
)

func validPriority(p string) bool {
	return p == models.PriorityLow || p == models.PriorityMedium || p == models.PriorityHigh
}

// GET /api/todos
// Default ordering: undone first, then newest-created first.
func ListTodos(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var todos []models.Todo
	if err := config.DB.
		Where("user_id = ?", u.ID).
		Order("is_done").
		Order("created_at desc").
		Find(&todos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not list todos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": todos})
}

type TodoReq struct {
	Title    string  `json:"title" binding:"required,max=200"`
	Note     string  `json:"note"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"due_date"` // YYYY-MM-DD, optional
}

// POST /api/todos
func CreateTodo(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req TodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !validPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid priority"})
		return
	}

	var due *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid due date"})
			return
		}
		due = &d
	}

	todo := models.Todo{
		UserID:   u.ID,
		Title:    req.Title,
		Note:     req.Note,
		Priority: req.Priority,
		DueDate:  due,
	}
	if err := config.DB.Create(&todo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create todo"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task added!", "data": todo})
}

// loadOwnTodo scopes lookup to the caller: another user's todo answers 404,
// not 403, so ids cannot be probed.
func loadOwnTodo(c *gin.Context, u models.User) (models.Todo, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid todo id"})
		return models.Todo{}, false
	}
	var todo models.Todo
	if err := config.DB.Where("id = ? AND user_id = ?", id, u.ID).First(&todo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
		return models.Todo{}, false
	}
	return todo, true
}

// PUT /api/todos/:id/toggle
func ToggleTodo(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)
	todo, ok := loadOwnTodo(c, u)
	if !ok {
		return
	}

	if err := config.DB.Model(&todo).Update("is_done", !todo.IsDone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update todo"})
		return
	}
	todo.IsDone = !todo.IsDone
	c.JSON(http.StatusOK, gin.H{"data": todo})
}

// DELETE /api/todos/:id
func DeleteTodo(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)
	todo, ok := loadOwnTodo(c, u)
	if !ok {
		return
	}

	if err := config.DB.Delete(&todo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted."})
}
