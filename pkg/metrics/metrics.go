// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分组
//
//   - HTTP：请求总数、请求耗时、处理中的请求数
//   - 目录业务：图书新增/删除/冲突、作者与出版社的解析结果、种子数据导入数量
//   - 基础设施：名称缓存命中率、事件发布结果
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounter(metrics.BooksAddedTotal)
//	metrics.IncCounterVec(metrics.NamesResolvedTotal, map[string]string{"kind": "author", "result": "created"})
//
// # 命名规范
//
//   - Counter以`_total`结尾
//   - Histogram以单位结尾（`_seconds`）
//   - 标签只使用有限取值（method、status、kind），不要把书名、ID放进标签
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册（promauto重复注册会panic）
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/book/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 目录业务指标

	// BooksAddedTotal 通过API新增的图书总数（种子导入见SeedBooksLoaded）
	BooksAddedTotal prometheus.Counter

	// BooksDeletedTotal 删除图书总数
	BooksDeletedTotal prometheus.Counter

	// BookConflictsTotal 重复图书（title+publisher）被拒绝的次数
	BookConflictsTotal prometheus.Counter

	// NamesResolvedTotal 作者/出版社名称解析次数
	// 标签：kind（author/publisher）、result（existing/created/raced）
	NamesResolvedTotal *prometheus.CounterVec

	// SeedBooksLoaded 最近一次种子导入的图书数量（Gauge）
	SeedBooksLoaded prometheus.Gauge

	// 基础设施指标

	// NameCacheRequestsTotal 名称缓存查询次数
	// 标签：kind（author/publisher）、result（hit/miss/stale/error/skipped）
	NameCacheRequestsTotal *prometheus.CounterVec

	// EventsPublishedTotal 图书事件发布次数
	// 标签：routing_key（book.added/book.deleted）、result（ok/error）
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次；重复调用是安全的
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 单机SQLite场景下大部分请求在毫秒级
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	BooksAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_books_added_total",
			Help: "新增图书总数",
		},
	)

	BooksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_books_deleted_total",
			Help: "删除图书总数",
		},
	)

	BookConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_book_conflicts_total",
			Help: "重复图书被拒绝的次数",
		},
	)

	NamesResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_names_resolved_total",
			Help: "作者/出版社名称解析次数",
		},
		[]string{"kind", "result"},
	)

	SeedBooksLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_seed_books_loaded",
			Help: "种子数据导入的图书数量",
		},
	)

	NameCacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_name_cache_requests_total",
			Help: "名称缓存查询次数",
		},
		[]string{"kind", "result"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_events_published_total",
			Help: "图书事件发布次数",
		},
		[]string{"routing_key", "result"},
	)
}

// 以下便捷函数允许在未初始化时调用（例如单元测试），此时直接忽略

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge == nil {
		return
	}
	gauge.Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
