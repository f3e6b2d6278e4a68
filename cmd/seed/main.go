package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/see-paw/backend-sub005/internal/config"
	"github.com/see-paw/backend-sub005/internal/repository"
	"github.com/see-paw/backend-sub005/internal/seed"
	"github.com/see-paw/backend-sub005/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var shelterID int64

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 插入随机收容所, 3: 插入随机动物, 4: 插入随机预约, 5: 插入真实数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&shelterID, "shelter-id", 0, "随机插入动物的收容所 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机用户", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("无法插入用户", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入用户成功", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的收容所数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				shelter := utils.GenerateRandomShelter()
				if err := repo.CreateShelter(shelter); err != nil {
					slog.Error("无法插入收容所", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入收容所成功", slog.Int("count", n-cnt))
		}
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的动物数量")
			return
		}

		// 未指定收容所时从已有收容所中随机挑选
		shelters, err := repo.GetAllShelters()
		if err != nil {
			slog.Error("无法获取收容所列表", slog.String("error", err.Error()))
			return
		}
		if len(shelters) == 0 {
			slog.Error("数据库中没有收容所，请先插入收容所")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			targetShelterID := shelterID
			if targetShelterID == 0 {
				targetShelterID = shelters[rand.Intn(len(shelters))].ID
			}

			animal := utils.GenerateRandomAnimal(targetShelterID)
			if err := repo.CreateAnimal(animal); err != nil {
				slog.Error("无法插入动物", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入动物成功", slog.Int("count", n-cnt))
	case 4:
		if n <= 0 {
			slog.Error("请输入合法的预约数量")
			return
		}

		// 获取所有可领养的动物和所有用户，随机配对生成预约
		animals, err := repo.GetAllAnimals(0, true)
		if err != nil {
			slog.Error("无法获取动物列表", slog.String("error", err.Error()))
			return
		}
		if len(animals) == 0 {
			slog.Error("数据库中没有可领养的动物，请先插入动物")
			return
		}

		users, err := repo.GetAllUsers()
		if err != nil {
			slog.Error("无法获取用户列表", slog.String("error", err.Error()))
			return
		}
		if len(users) == 0 {
			slog.Error("数据库中没有用户，请先插入用户")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			animal := animals[rand.Intn(len(animals))]
			user := users[rand.Intn(len(users))]

			slot := utils.GenerateRandomActivitySlot(animal, user.ID)

			// 跳过与已有时段冲突的预约
			conflicts, err := repo.CountConflictingSlots(animal.ID, animal.ShelterID, slot.StartTime, slot.EndTime)
			if err != nil {
				slog.Error("无法检查时段冲突", slog.String("error", err.Error()))
				continue
			}
			if conflicts > 0 {
				continue
			}

			if err := repo.CreateSlot(slot); err != nil {
				slog.Error("无法插入预约", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入预约成功", slog.Int("count", cnt))
	case 5:
		seed.SeedRealData(repo)
	default:
		slog.Error("指定的操作非法")
	}
}
