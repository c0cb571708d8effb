package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/pkg/response"
)

// CreateCourse godoc
// @Summary     Create a course
// @Tags        Courses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body courseReq true "Course data"
// @Success     200  {object} courseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - course code taken"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/courses [POST]
func (h *handler) CreateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCourseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateCourse(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateCourse: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, newCourseResp(output))
}

// ListCourses godoc
// @Summary     List courses
// @Tags        Courses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listCoursesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/courses [GET]
func (h *handler) ListCourses(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListCourses(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCourses: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, h.newListCoursesResp(output))
}

// GetCourse godoc
// @Summary     Course overview
// @Description Returns the course with its tasks, deadlines, progress and status.
// @Tags        Courses
// @Produce     json
// @Security    BearerAuth
// @Param       id  path     string true "Course ID"
// @Success     200 {object} overviewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id} [GET]
func (h *handler) GetCourse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Overview(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, h.newOverviewResp(output))
}

// UpdateCourse godoc
// @Summary     Update a course
// @Tags        Courses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Course ID"
// @Param       body body courseReq true "Course data"
// @Success     200  {object} courseResp
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     409  {object} response.Resp "Conflict - course code taken"
// @Router      /api/v1/courses/{id} [PUT]
func (h *handler) UpdateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCourseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateCourse(ctx, sc, req.toUpdateInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateCourse: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, newCourseResp(output))
}

// DeleteCourse godoc
// @Summary     Delete a course with its tasks and deadlines
// @Tags        Courses
// @Produce     json
// @Security    BearerAuth
// @Param       id  path     string true "Course ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id} [DELETE]
func (h *handler) DeleteCourse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteCourse(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteCourse: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, nil)
}

// CreateTask godoc
// @Summary     Add a task
// @Description Relative due dates such as "tomorrow" or "in 3 days" are stored as YYYY-MM-DD.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string        true "Course ID"
// @Param       body body createTaskReq true "Task data"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateTask(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, newTaskResp(output))
}

// UpdateTask godoc
// @Summary     Update a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Course ID"
// @Param       task_id path string        true "Task ID"
// @Param       body    body updateTaskReq true "Fields to change"
// @Success     200     {object} taskResp
// @Failure     400     {object} response.Resp "Bad Request"
// @Failure     404     {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/tasks/{task_id} [PUT]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTask(ctx, sc, req.toInput(c.Param("id"), c.Param("task_id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, newTaskResp(output))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string true "Course ID"
// @Param       task_id path string true "Task ID"
// @Success     200     {object} response.Resp
// @Failure     404     {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/tasks/{task_id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteTask(ctx, sc, c.Param("id"), c.Param("task_id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, nil)
}

// ImportTasks godoc
// @Summary     Import tasks from a markdown checklist
// @Description Each "- [ ] title (due: date)" line becomes a task; checked boxes are imported as completed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string         true "Course ID"
// @Param       body body importTasksReq true "Markdown checklist"
// @Success     200  {object} importTasksResp
// @Failure     400  {object} response.Resp "Bad Request - no checklist items"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/tasks/import [POST]
func (h *handler) ImportTasks(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processImportTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportTasks(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.ImportTasks: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, h.newImportTasksResp(output))
}

// CreateDeadline godoc
// @Summary     Add a deadline
// @Tags        Deadlines
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string            true "Course ID"
// @Param       body body createDeadlineReq true "Deadline data"
// @Success     200  {object} deadlineResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/deadlines [POST]
func (h *handler) CreateDeadline(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateDeadlineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateDeadline(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateDeadline: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, newDeadlineResp(output))
}

// DeleteDeadline godoc
// @Summary     Delete a deadline
// @Tags        Deadlines
// @Produce     json
// @Security    BearerAuth
// @Param       id          path string true "Course ID"
// @Param       deadline_id path string true "Deadline ID"
// @Success     200         {object} response.Resp
// @Failure     404         {object} response.Resp "Not Found"
// @Router      /api/v1/courses/{id}/deadlines/{deadline_id} [DELETE]
func (h *handler) DeleteDeadline(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteDeadline(ctx, sc, c.Param("id"), c.Param("deadline_id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteDeadline: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, nil)
}

// SyncCalendar godoc
// @Summary     Export upcoming deadlines to Google Calendar
// @Description Creates one all-day event per upcoming deadline. Events already on the calendar are skipped.
// @Tags        Deadlines
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true  "Course ID"
// @Param       body body syncCalendarReq false "Target calendar"
// @Success     200  {object} syncCalendarResp
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Router      /api/v1/courses/{id}/calendar/sync [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSyncCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SyncCalendar(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.SyncCalendar: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, h.newSyncCalendarResp(output))
}

// Dashboard godoc
// @Summary     Dashboard across all courses
// @Tags        Courses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboardResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Dashboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, h.newDashboardResp(output))
}
