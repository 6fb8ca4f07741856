package main

import (
	"github.com/artisanbay/sellerhub/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()
	s.Start(s.Cfg.HTTPAddr)
}
