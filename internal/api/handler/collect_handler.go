package handler

import (
	"Camellia/internal/api/dto"
	"Camellia/internal/pkg/response"
	"Camellia/internal/service"

	"github.com/gin-gonic/gin"
)

type CollectHandler struct {
	collectSvc service.CollectService
}

func NewCollectHandler(collectSvc service.CollectService) *CollectHandler {
	return &CollectHandler{
		collectSvc: collectSvc,
	}
}

// Collect 发起帖子采集
func (s *CollectHandler) Collect(c *gin.Context) {
	var req dto.CollectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	task, err := s.collectSvc.Collect(c.Request.Context(), req.URL)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}

// GetTask 查询采集任务进度
func (s *CollectHandler) GetTask(c *gin.Context) {
	task, err := s.collectSvc.GetTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}
