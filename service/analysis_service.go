package service

import (
	"context"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/analyzer"
)

// AnalysisServiceImpl implements domain.AnalysisService by resolving a
// request's configuration and delegating to internal/analyzer.Analyze.
type AnalysisServiceImpl struct{}

// NewAnalysisService creates a new analysis service implementation.
func NewAnalysisService() *AnalysisServiceImpl {
	return &AnalysisServiceImpl{}
}

// Analyze runs one full analysis against req.TargetPath.
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root := req.TargetPath
	if root == "" {
		root = "."
	}

	cfg, err := ResolveConfig(root, req)
	if err != nil {
		return nil, err
	}

	result, err := analyzer.Analyze(cfg)
	if err != nil {
		return nil, err
	}

	return result, nil
}
