package server

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/bharatpulse/culturesense/pkg/config"
	"github.com/bharatpulse/culturesense/pkg/knowledge"
	"github.com/bharatpulse/culturesense/pkg/model"
	"github.com/bharatpulse/culturesense/pkg/pipeline"
)

// AnalyzeService 对外暴露分析流水线的 HTTP 服务
type AnalyzeService struct {
	pipeline *pipeline.Pipeline
	kb       *knowledge.Holder
	overlay  string
	log      *log.Helper
}

// NewAnalyzeService 创建服务实例；overlay 为知识库覆盖文件路径，可为空
func NewAnalyzeService(p *pipeline.Pipeline, kb *knowledge.Holder, overlay string, logger log.Logger) *AnalyzeService {
	return &AnalyzeService{pipeline: p, kb: kb, overlay: overlay, log: log.NewHelper(logger)}
}

// NewHTTPServer 创建 HTTP 服务器并注册路由
func NewHTTPServer(c *config.ServerConfig, s *AnalyzeService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Addr != "" {
		opts = append(opts, http.Address(c.Addr))
	}
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)
	srv.HandleFunc("/v1/analyze", s.handleAnalyze)
	srv.HandleFunc("/v1/health", s.handleHealth)
	srv.HandleFunc("/v1/knowledge/reload", s.handleReload)
	return srv
}

func (s *AnalyzeService) handleAnalyze(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]string{"error": "POST required"})
		return
	}

	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, nethttp.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	res, err := s.pipeline.Analyze(r.Context(), req)
	if err != nil {
		// 校验失败是唯一面向调用方的请求级错误
		if errors.Is(err, model.ErrEmptyText) || errors.Is(err, model.ErrTextTooLong) {
			writeJSON(w, nethttp.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.log.Errorf("analyze failed: %v", err)
		writeJSON(w, nethttp.StatusInternalServerError, map[string]string{"error": "analysis failed"})
		return
	}

	writeJSON(w, nethttp.StatusOK, res)
}

func (s *AnalyzeService) handleHealth(w nethttp.ResponseWriter, _ *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{
		"status":            "ok",
		"knowledge_version": s.kb.Current().Version,
	})
}

// handleReload 重新读取覆盖文件并原子替换知识库快照
func (s *AnalyzeService) handleReload(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]string{"error": "POST required"})
		return
	}

	base, err := knowledge.Load(s.overlay)
	if err != nil {
		s.log.Errorf("knowledge reload failed: %v", err)
		writeJSON(w, nethttp.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.kb.Swap(base)
	s.log.Infof("knowledge reloaded, version %s", base.Version)
	writeJSON(w, nethttp.StatusOK, map[string]string{
		"status":            "reloaded",
		"knowledge_version": base.Version,
	})
}

func writeJSON(w nethttp.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
