package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/model"
	"gutlog-api/internal/svc"
	"gutlog-api/internal/types"
)

type SaveEntryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSaveEntryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SaveEntryLogic {
	return &SaveEntryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SaveEntry validates the submitted entry, derives its display labels, and
// writes it into the document. Saving twice for the same date overwrites.
func (l *SaveEntryLogic) SaveEntry(req *types.SaveEntryReq) (*types.SaveEntryResp, error) {
	if err := model.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	entry := req.Entry()
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid entry for %s: %w", req.Date, err)
	}
	entry.ApplyLabels()

	if err := l.svcCtx.Store.SaveEntry(req.Date, entry); err != nil {
		return nil, err
	}
	return &types.SaveEntryResp{Date: req.Date, Entry: entry}, nil
}
