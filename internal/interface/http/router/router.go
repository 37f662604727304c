package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookcatalog/docs" // swagger文档
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
)

// New 创建Gin引擎并注册全部路由
//
// 路由表:
//
//	GET    /author/id/:id        作者名称
//	GET    /author/books/:id     作者的图书
//	GET    /publisher/id/:id     出版社名称
//	GET    /publisher/books/:id  出版社的图书
//	GET    /books                全部图书
//	POST   /book                 新增图书
//	DELETE /book/:id             删除图书
//
// 缺少id的路径(/author/id/、DELETE /book等)显式注册,返回400而不是404
func New(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	publisherHandler *handler.PublisherHandler,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Tracing(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 作者
	r.GET("/author/id/:id", authorHandler.GetAuthor)
	r.GET("/author/books/:id", authorHandler.ListBooks)

	// 出版社
	r.GET("/publisher/id/:id", publisherHandler.GetPublisher)
	r.GET("/publisher/books/:id", publisherHandler.ListBooks)

	// 图书
	r.GET("/books", bookHandler.ListBooks)
	r.POST("/book", bookHandler.PublishBook)
	r.DELETE("/book/:id", bookHandler.DeleteBook)

	for _, path := range []string{
		"/author/id", "/author/id/",
		"/author/books", "/author/books/",
		"/publisher/id", "/publisher/id/",
		"/publisher/books", "/publisher/books/",
	} {
		r.GET(path, handler.MissingID)
	}
	r.DELETE("/book", handler.MissingID)
	r.DELETE("/book/", handler.MissingID)

	registerStatic(r, cfg.Server.StaticDir)

	return r
}

// registerStatic 浏览器页面(index.html + script.js + style.css)
func registerStatic(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.StaticFile("/script.js", filepath.Join(dir, "script.js"))
	r.StaticFile("/style.css", filepath.Join(dir, "style.css"))
}
