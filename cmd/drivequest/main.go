package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/DriveQuest/DriveQuest/internal/catalog"
	"github.com/DriveQuest/DriveQuest/internal/common/config"
	"github.com/DriveQuest/DriveQuest/internal/common/logger"
	"github.com/DriveQuest/DriveQuest/internal/rental"
	"github.com/DriveQuest/DriveQuest/internal/shell"
	"github.com/DriveQuest/DriveQuest/internal/storage"
)

var (
	configPath = flag.String("config", "configs/drivequest.json", "配置文件路径")
)

func main() {
	flag.Parse()

	// 加载配置（文件缺失时使用默认值）
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 配置了 Consul KV key 时尝试用远端配置覆盖本地配置；失败不阻塞启动
	if cfg.Consul.Key != "" {
		remote, err := config.LoadConfigFromConsulKV(cfg.Consul.Host, cfg.Consul.Port, cfg.Consul.Key)
		if err != nil {
			log.Warnf("failed to load config from consul kv, using local config: %v", err)
		} else {
			cfg = remote
		}
	}

	store := catalog.NewStore()
	rentals := rental.NewService(store)
	files := storage.NewFileStore(log)

	// 启动时加载目录。加载在独立 goroutine 中执行并在接受第一条命令前
	// 完成汇合；加载失败以空目录继续，绝不中止进程。
	done := make(chan struct{})
	go func() {
		defer close(done)
		fmt.Println("Cargando vehículos...")
		n, err := files.Load(cfg.Catalog.InputPath, store)
		if err != nil {
			log.Warnf("error al cargar vehículos: %v", err)
			return
		}
		fmt.Printf("%d vehículos cargados correctamente.\n", n)
	}()
	<-done

	sh := shell.New(os.Stdin, os.Stdout, store, rentals, cfg.Catalog.ReceiptPath, log)
	if err := sh.Run(context.Background()); err != nil {
		log.Errorf("shell exited with error: %v", err)
	}

	// 退出前全量落盘
	if err := files.Save(cfg.Catalog.OutputPath, store.ListAll()); err != nil {
		log.Errorf("error al guardar vehículos: %v", err)
	} else {
		fmt.Println("Vehículos guardados correctamente.")
	}
	shell.PrintFarewell(os.Stdout)
}
