package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type GreetParams struct {
	Name string `json:"name"`
}

func (s *server) initGreet(r *gin.Engine) {
	r.POST("/api/greet", postP[GreetParams](s.greet))
}

func (s *server) greet(params *GreetParams) (any, error) {
	return gin.H{
		"message": fmt.Sprintf("Hello, %v! You've been greeted from the server!", params.Name),
	}, nil
}
