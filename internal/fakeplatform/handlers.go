package fakeplatform

import (
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StefanSilver/dtlpy/pkg/response"
)

// Handlers return raw entities on success, matching the hosted platform.
// Errors go through the pkg/response envelope that the client's status
// mapping understands.

func (srv *Server) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "fakeplatform",
	})
}

// --- Projects ---

type createProjectReq struct {
	Name string `json:"name" binding:"required"`
}

func (srv *Server) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, srv.store.CreateProject(req.Name))
}

func (srv *Server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, srv.store.ListProjects(c.Query("name")))
}

func (srv *Server) getProject(c *gin.Context) {
	p, ok := srv.store.GetProject(c.Param("id"))
	if !ok {
		response.NotFound(c, "project not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (srv *Server) deleteProject(c *gin.Context) {
	if !srv.store.DeleteProject(c.Param("id")) {
		response.NotFound(c, "project not found")
		return
	}
	response.OK(c, nil)
}

// --- Datasets ---

type createDatasetReq struct {
	Name string `json:"name" binding:"required"`
}

func (srv *Server) createDataset(c *gin.Context) {
	var req createDatasetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	d, ok := srv.store.CreateDataset(c.Param("id"), req.Name)
	if !ok {
		response.NotFound(c, "project not found")
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (srv *Server) listDatasets(c *gin.Context) {
	if _, ok := srv.store.GetProject(c.Param("id")); !ok {
		response.NotFound(c, "project not found")
		return
	}
	c.JSON(http.StatusOK, srv.store.ListDatasets(c.Param("id"), c.Query("name")))
}

func (srv *Server) getDataset(c *gin.Context) {
	d, ok := srv.store.GetDataset(c.Param("id"))
	if !ok {
		response.NotFound(c, "dataset not found")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (srv *Server) deleteDataset(c *gin.Context) {
	if !srv.store.DeleteDataset(c.Param("id")) {
		response.NotFound(c, "dataset not found")
		return
	}
	response.OK(c, nil)
}

// --- Items ---

func (srv *Server) uploadItem(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, err)
		return
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}

	it, ok := srv.store.AddItem(c.Param("id"), fh.Filename, fh.Size, mimeType)
	if !ok {
		response.NotFound(c, "dataset not found")
		return
	}
	c.JSON(http.StatusCreated, it)
}

type itemsPageResp struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

func (srv *Server) listItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	page, total, ok := srv.store.ListItems(c.Param("id"), c.Query("name"), limit, offset)
	if !ok {
		response.NotFound(c, "dataset not found")
		return
	}
	c.JSON(http.StatusOK, itemsPageResp{
		Items:  page,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (srv *Server) getItem(c *gin.Context) {
	it, ok := srv.store.GetItem(c.Param("id"), c.Param("itemId"))
	if !ok {
		response.NotFound(c, "item not found")
		return
	}
	c.JSON(http.StatusOK, it)
}

func (srv *Server) deleteItem(c *gin.Context) {
	if !srv.store.DeleteItem(c.Param("id"), c.Param("itemId")) {
		response.NotFound(c, "item not found")
		return
	}
	response.OK(c, nil)
}
