package rental

import (
	"context"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/DriveQuest/DriveQuest/internal/catalog"
	"github.com/DriveQuest/DriveQuest/internal/vehicle"
)

// Service 封装租赁/结算用例（不依赖交互层），便于复用和测试。
type Service struct {
	store *catalog.Store
}

func NewService(store *catalog.Store) *Service {
	return &Service{store: store}
}

// Rent 租赁流程：按车牌查找 -> 状态校验 -> 天数校验 -> 写入租期并返回结算单。
// 失败依次返回 catalog.ErrNotFound / vehicle.ErrAlreadyRented / *vehicle.ValidationError，
// 任何失败都不改变目录状态；通过全部校验后的写入不会再失败，无需回滚。
func (s *Service) Rent(ctx context.Context, plate string, days int) (*vehicle.Receipt, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, &vehicle.ValidationError{Field: "patente", Reason: "la patente no puede estar vacía"}
	}
	return s.store.Rent(plate, days)
}

// Receipts 当前所有已租出车辆的结算单，按目录顺序。未租出的车辆没有结算单。
func (s *Service) Receipts(ctx context.Context) []*vehicle.Receipt {
	if s == nil || s.store == nil {
		return nil
	}
	var out []*vehicle.Receipt
	for _, v := range s.store.ListAll() {
		r, err := v.ComputeReceipt()
		if err != nil {
			// 只可能是未租出，跳过
			continue
		}
		out = append(out, r)
	}
	return out
}

// ExportReceipts 把当前结算单写成 JSON 文件（报表，不属于目录持久化）。
// 返回导出的结算单数量。
func (s *Service) ExportReceipts(ctx context.Context, path string) (int, error) {
	if s == nil || s.store == nil {
		return 0, fmt.Errorf("service not initialized")
	}
	receipts := s.Receipts(ctx)
	data, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal receipts: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write receipts file: %w", err)
	}
	return len(receipts), nil
}
