package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/model"
	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

// ErrAnalysisUnconfigured is returned when the analysis endpoints are hit
// without an LLM section in the service configuration.
var ErrAnalysisUnconfigured = errors.New("analysis is not configured: set the llm section and OPENAI_API_KEY")

type DailyAnalysisLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDailyAnalysisLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DailyAnalysisLogic {
	return &DailyAnalysisLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DailyAnalysis sends one day's entry (default today) to the wellness model
// and returns its structured report.
func (l *DailyAnalysisLogic) DailyAnalysis(req *types.DailyAnalysisReq) (*types.DailyAnalysisResp, error) {
	if l.svcCtx.Analyzer == nil {
		return nil, ErrAnalysisUnconfigured
	}

	date := req.Date
	if date == "" {
		date = l.svcCtx.Store.Today()
	}
	if err := model.ValidateDate(date); err != nil {
		return nil, err
	}

	entry, ok := l.svcCtx.Store.Entry(date)
	if !ok {
		return nil, fmt.Errorf("no entry recorded for %s", date)
	}

	report, err := l.svcCtx.Analyzer.AnalyzeDaily(l.ctx, date, entry)
	if err != nil {
		l.Errorf("daily analysis for %s failed: %v", date, err)
		return nil, err
	}
	return &types.DailyAnalysisResp{Date: date, Report: *report}, nil
}
