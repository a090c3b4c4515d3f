package api

func (s *Server) setupRoutes() {
	s.router.GET("/", s.systemHandler.Info)
	s.router.GET("/health", s.systemHandler.Health)

	api := s.router.Group("/api")
	{
		api.GET("/config", s.systemHandler.RuntimeConfig)
		api.GET("/activity", s.activityHandler.ListActivity)

		cameras := api.Group("/cameras")
		{
			cameras.GET("", s.cameraHandler.ListCameras)
			cameras.GET("/:id/frame", s.cameraHandler.GetFrame)
			cameras.POST("/:id/toggle", s.cameraHandler.ToggleCamera)
			cameras.POST("/:id/move", s.cameraHandler.MoveCamera)
			cameras.POST("/:id/select", s.cameraHandler.SelectCamera)
		}

		filters := api.Group("/filters")
		{
			filters.GET("", s.filterHandler.ListFilters)
			filters.POST("", s.filterHandler.CreateFilter)
			filters.DELETE("/:id", s.filterHandler.DeleteFilter)
			filters.POST("/:id/move", s.filterHandler.MoveFilter)
			filters.POST("/:id/toggle", s.filterHandler.ToggleFilter)
		}
	}
}
