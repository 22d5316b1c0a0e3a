package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/DriveQuest/DriveQuest/internal/vehicle"
)

// 目录层错误。文案同样直接面向用户展示。
var (
	ErrNotFound       = errors.New("no se encontró un vehículo con esa patente")
	ErrDuplicatePlate = errors.New("ya existe un vehículo con esa patente")
)

// 长短租的边界：>= 7 天为长租，<= 6 天为短租。
const longStayDays = 7

// Store 车辆目录：以车牌（大写归一化后）为键的内存映射。
// 所有读写都在同一把锁下进行，对外只暴露快照，不暴露底层 map。
// 为了让列表与落盘顺序在单次运行内确定，额外维护插入顺序。
type Store struct {
	mu    sync.Mutex
	byKey map[string]*vehicle.Vehicle
	order []string
}

func NewStore() *Store {
	return &Store{byKey: make(map[string]*vehicle.Vehicle)}
}

// key 查找键：车牌大小写不敏感。
func key(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// Insert 注册新车辆。车牌已存在时返回 ErrDuplicatePlate，目录不发生任何变化。
func (s *Store) Insert(v *vehicle.Vehicle) error {
	if s == nil || v == nil {
		return fmt.Errorf("store or vehicle is nil")
	}
	k := key(v.Plate)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byKey[k]; ok {
		return ErrDuplicatePlate
	}
	s.byKey[k] = v
	s.order = append(s.order, k)
	return nil
}

// Put 覆盖写入（last-write-wins）。仅供持久化加载使用：同一文件内
// 重复车牌以后出现的记录为准。
func (s *Store) Put(v *vehicle.Vehicle) {
	if s == nil || v == nil {
		return
	}
	k := key(v.Plate)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byKey[k]; !ok {
		s.order = append(s.order, k)
	}
	s.byKey[k] = v
}

// FindByPlate 按车牌查找（大小写不敏感）。未找到返回 ErrNotFound。
func (s *Store) FindByPlate(plate string) (*vehicle.Vehicle, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byKey[key(plate)]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// Rent 在持锁状态下完成查找 + 状态变更，保证读改写相对其他操作不可分割。
func (s *Store) Rent(plate string, days int) (*vehicle.Receipt, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byKey[key(plate)]
	if !ok {
		return nil, ErrNotFound
	}
	return v.Rent(days)
}

// ListAll 返回全部车辆的快照，按插入顺序。
func (s *Store) ListAll() []*vehicle.Vehicle {
	return s.snapshot(func(*vehicle.Vehicle) bool { return true })
}

// ListByKind 返回指定类型车辆的快照。
func (s *Store) ListByKind(k vehicle.Kind) []*vehicle.Vehicle {
	return s.snapshot(func(v *vehicle.Vehicle) bool { return v.Kind == k })
}

// FilterLongStay 长租车辆（>= 7 天）。
func (s *Store) FilterLongStay() []*vehicle.Vehicle {
	return s.snapshot(func(v *vehicle.Vehicle) bool { return v.RentalDays >= longStayDays })
}

// FilterShortStay 短租车辆（<= 6 天）。未租出的车辆（RentalDays == 0）
// 也满足该条件，这是刻意保留的业务口径。
func (s *Store) FilterShortStay() []*vehicle.Vehicle {
	return s.snapshot(func(v *vehicle.Vehicle) bool { return v.RentalDays < longStayDays })
}

// CountLongStays 长租车辆数量。
func (s *Store) CountLongStays() int {
	return len(s.FilterLongStay())
}

// CountShortStays 短租车辆数量。
func (s *Store) CountShortStays() int {
	return len(s.FilterShortStay())
}

// Len 目录中的车辆数量。
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}

func (s *Store) snapshot(keep func(*vehicle.Vehicle) bool) []*vehicle.Vehicle {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*vehicle.Vehicle, 0, len(s.order))
	for _, k := range s.order {
		v := s.byKey[k]
		if v != nil && keep(v) {
			out = append(out, v)
		}
	}
	return out
}
