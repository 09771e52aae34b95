package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todo_backend/internal/models"
	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errTodoNotFound  = "Todo not found"
	errInvalidTodoID = "invalid todo id"
	errInvalidSkip   = "invalid 'skip'; must be a non-negative integer"
	errInvalidLimit  = "invalid 'limit'; must be an integer in 1..1000"
)

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200" example:"Buy milk"`
	Description *string `json:"description" binding:"omitempty,max=1000" example:"2 liters"`
	Completed   bool    `json:"completed"`
}

// UpdateTodoRequest is the body of PUT /todos/{id}. Omitted fields are left unchanged.
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

func (h *Handler) todoError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": errTodoNotFound})
	case errors.Is(err, service.ErrInvalidTodo), errors.Is(err, service.ErrInvalidPagination):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

func parseTodoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": errInvalidTodoID})
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter.
func queryInt(c *gin.Context, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// @Summary      Create todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTodoRequest  true  "New todo"
// @Success      201   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todos [post]
func (h *Handler) createTodo(c *gin.Context) {
	var req CreateTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	t, err := h.services.Todos.Create(c.Request.Context(), service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.todoError(c, "todo_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Param        skip   query     int  false  "Items to skip"  default(0)
// @Param        limit  query     int  false  "Max items (1..1000)"  default(100)
// @Success      200    {array}   models.Todo
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /todos [get]
func (h *Handler) listTodos(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": errInvalidSkip})
		return
	}
	limit, err := queryInt(c, "limit", service.DefaultListLimit)
	if err != nil || limit < 1 || limit > service.MaxListLimit {
		c.JSON(http.StatusBadRequest, gin.H{"detail": errInvalidLimit})
		return
	}

	todos, err := h.services.Todos.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.todoError(c, "todo_list_failed", err, "skip", skip, "limit", limit)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

// @Summary      Get todo
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  models.Todo
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *Handler) getTodo(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}
	t, err := h.services.Todos.Get(c.Request.Context(), id)
	if err != nil {
		h.todoError(c, "todo_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Update todo
// @Description  Partial update: only the fields present in the body are changed.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Todo id"
// @Param        body  body      UpdateTodoRequest  true  "Fields to change"
// @Success      200   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *Handler) updateTodo(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}
	var req UpdateTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	t, err := h.services.Todos.Update(c.Request.Context(), id, models.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.todoError(c, "todo_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Delete todo
// @Tags         todos
// @Param        id   path  int  true  "Todo id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *Handler) deleteTodo(c *gin.Context) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}
	if err := h.services.Todos.Delete(c.Request.Context(), id); err != nil {
		h.todoError(c, "todo_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
