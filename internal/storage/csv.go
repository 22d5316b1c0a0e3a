package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DriveQuest/DriveQuest/internal/catalog"
	"github.com/DriveQuest/DriveQuest/internal/common/logger"
	"github.com/DriveQuest/DriveQuest/internal/vehicle"
)

// CSV 持久化格式（每行一条记录，逗号分隔，不支持引号转义）：
//
//	TIPO,PATENTE,MARCA,MODELO,DIAS_ARRIENDO,VALOR_DIARIO,PUERTAS,ANIO,CAPACIDAD
//
// 读取时表头可有可无；写出时总是带表头。
const header = "TIPO,PATENTE,MARCA,MODELO,DIAS_ARRIENDO,VALOR_DIARIO,PUERTAS,ANIO,CAPACIDAD"

const fieldCount = 9

// FileStore 目录的文件持久化网关。行级错误只告警跳过，整文件错误
// 向上返回由调用方决定（启动时以空目录继续，绝不中止进程）。
type FileStore struct {
	log logger.Logger
}

func NewFileStore(log logger.Logger) *FileStore {
	return &FileStore{log: log}
}

// Load 从 path 读取目录，逐行解析后以 last-write-wins 写入 store。
// 返回成功应用的行数。文件打不开时返回错误，store 不变。
func (f *FileStore) Load(path string, store *catalog.Store) (int, error) {
	if f == nil || store == nil {
		return 0, fmt.Errorf("file store or catalog is nil")
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	loaded := 0
	headerChecked := false
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// 只对第一条非空行做表头判断
		if !headerChecked {
			headerChecked = true
			if strings.HasPrefix(strings.ToUpper(line), "TIPO") {
				continue
			}
		}
		v, err := parseLine(line)
		if err != nil {
			f.log.Warnf("línea inválida, se ignora: %q (%v)", line, err)
			continue
		}
		store.Put(v)
		loaded++
	}
	if err := sc.Err(); err != nil {
		return loaded, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return loaded, nil
}

// parseLine 解析一条记录。任何字段不合法都使该行被整体丢弃，
// 不会产生半成品车辆。
func parseLine(line string) (*vehicle.Vehicle, error) {
	fields := strings.Split(line, ",")
	if len(fields) < fieldCount {
		return nil, fmt.Errorf("faltan datos: %d campos", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	kind, err := vehicle.ParseKind(fields[0])
	if err != nil {
		return nil, err
	}
	nums := make([]int, 5)
	for i, idx := range []int{4, 5, 6, 7, 8} {
		n, err := strconv.Atoi(fields[idx])
		if err != nil {
			return nil, fmt.Errorf("campo numérico inválido %q", fields[idx])
		}
		nums[i] = n
	}
	days, rate, doors, year, capacity := nums[0], nums[1], nums[2], nums[3], nums[4]
	if days < 0 {
		return nil, fmt.Errorf("días de arriendo negativos: %d", days)
	}

	v, err := vehicle.New(kind, fields[1], fields[2], fields[3], rate, doors, year, capacity)
	if err != nil {
		return nil, err
	}
	// 持久化状态的车辆可能已处于租出状态，直接恢复租期
	v.RentalDays = days
	return v, nil
}

// Save 把目录全量写到 path，按目录迭代顺序，总是带表头。
func (f *FileStore) Save(path string, vehicles []*vehicle.Vehicle) error {
	if f == nil {
		return fmt.Errorf("file store is nil")
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, header)
	for _, v := range vehicles {
		if v == nil {
			continue
		}
		fmt.Fprintf(w, "%s,%s,%s,%s,%d,%d,%d,%d,%d\n",
			v.Kind, v.Plate, v.Make, v.Model, v.RentalDays, v.DailyRate, v.Doors, v.Year, v.Capacity)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}
	return nil
}
