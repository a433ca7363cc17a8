package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-gin-blog-api/internal/core/config"
	"go-gin-blog-api/internal/core/database"
	"go-gin-blog-api/internal/core/logger"
	"go-gin-blog-api/internal/feature/user"
	"go-gin-blog-api/pkg/utils"
)

// 往 users 表塞演示账号。注册流程在别的服务，这里只是让 API 可玩：
// 固定 pid 的 alice/bob 方便拼调试令牌，再加几个随机用户
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:   cfg.DB.Driver,
		DSN:      cfg.DB.DSN,
		LogLevel: cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	pic := func(name string) *string {
		u := fmt.Sprintf("https://pic.example.com/%s.png", name)
		return &u
	}

	seeds := []user.UserModel{
		{Pid: "alice-pid", Email: "alice@example.com", Name: "alice",
			PasswordHash: utils.HashPassword("alice-password"), PictureURL: pic("alice")},
		{Pid: "bob-pid", Email: "bob@example.com", Name: "bob",
			PasswordHash: utils.HashPassword("bob-password"), PictureURL: pic("bob")},
	}
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("demo%d", i+1)
		seeds = append(seeds, user.UserModel{
			Pid:          utils.NewID(),
			Email:        name + "@example.com",
			Name:         name,
			PasswordHash: utils.HashPassword(name + "-password"),
		})
	}

	inserted := 0
	for _, u := range seeds {
		var n int64
		if err := db.Model(&user.UserModel{}).Where("pid = ?", u.Pid).Count(&n).Error; err != nil {
			log.Fatal("count user", zap.Error(err))
		}
		if n > 0 {
			continue // 重复跑不重复插
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatal("create user", zap.String("pid", u.Pid), zap.Error(err))
		}
		inserted++
	}
	log.Info("seed done", zap.Int("inserted", inserted), zap.Int("total", len(seeds)))
}
