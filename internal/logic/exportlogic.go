package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/export"
	"gutlog-api/internal/svc"
)

type ExportLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewExportLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ExportLogic {
	return &ExportLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CSV renders the full journal as a spreadsheet-ready CSV string.
func (l *ExportLogic) CSV() (string, error) {
	return export.CSV(l.svcCtx.Store.Load())
}

// JSON renders the full journal in the store's own on-disk format, so an
// export can be dropped back in as the backing file.
func (l *ExportLogic) JSON() ([]byte, error) {
	return export.JSON(l.svcCtx.Store.Load())
}
