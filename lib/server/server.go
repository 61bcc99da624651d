package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/model"
	"github.com/pescuma/bethyw/lib/render"
)

type Options struct {
	Port   uint
	Render *render.Options
}

// Run serves areas, read only, until the server fails. Every import must have
// finished before calling it.
func Run(console consoles.Console, areas *model.Areas, opts *Options) error {
	s := newServer(areas, opts)

	console.Printf("Serving %v areas on port %v...\n", areas.Size(), s.opts.Port)

	gin.SetMode(gin.ReleaseMode)

	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}

type server struct {
	opts  *Options
	areas *model.Areas
}

func newServer(areas *model.Areas, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2427
	}
	if opts.Render == nil {
		opts.Render = render.DefaultOptions()
	}

	return &server{
		opts:  opts,
		areas: areas,
	}
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	s.initAreas(r)

	return r
}
