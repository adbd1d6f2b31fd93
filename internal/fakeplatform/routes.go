package fakeplatform

func (srv *Server) registerRoutes() {
	srv.engine.GET("/health", srv.healthCheck)

	projects := srv.engine.Group("/projects")
	{
		projects.POST("", srv.createProject)
		projects.GET("", srv.listProjects)
		projects.GET("/:id", srv.getProject)
		projects.DELETE("/:id", srv.deleteProject)

		projects.POST("/:id/datasets", srv.createDataset)
		projects.GET("/:id/datasets", srv.listDatasets)
	}

	datasets := srv.engine.Group("/datasets")
	{
		datasets.GET("/:id", srv.getDataset)
		datasets.DELETE("/:id", srv.deleteDataset)

		datasets.POST("/:id/items", srv.uploadItem)
		datasets.GET("/:id/items", srv.listItems)
		datasets.GET("/:id/items/:itemId", srv.getItem)
		datasets.DELETE("/:id/items/:itemId", srv.deleteItem)
	}
}
