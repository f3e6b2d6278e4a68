package seed

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/see-paw/backend-sub005/internal/domain"
	"github.com/see-paw/backend-sub005/internal/repository"
)

var requiredHeaders = []string{"收容所", "城市", "地址", "电话", "开放时间", "关闭时间", "动物名", "物种", "品种", "性别", "出生日期", "已绝育", "可领养"}

// SeedRealData 从 CSV 中读取收容所和动物数据并插入数据库，
// 同一个收容所名只会创建一次
func SeedRealData(r *repository.Repository) {
	file, err := os.Open("./internal/seed/data/animals.csv")
	if err != nil {
		slog.Error("打开文件失败", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// 读取表头
	headers, err := reader.Read()
	if err != nil {
		slog.Error("读取表头失败", "error", err)
		return
	}

	headerIndex := make(map[string]int)
	for i, header := range headers {
		headerIndex[header] = i
	}
	for _, header := range requiredHeaders {
		if _, ok := headerIndex[header]; !ok {
			slog.Error("没有找到数据列", "header", header)
			return
		}
	}

	// 读取数据
	var records []map[string]string
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			slog.Error("读取文件失败", "error", err)
			return
		}

		record := make(map[string]string)
		for i, value := range row {
			record[headers[i]] = value
		}
		records = append(records, record)
	}

	// 插入收容所和动物
	shelterIDs := make(map[string]int64)
	cnt := 0
	for _, record := range records {
		shelterName := record["收容所"]
		if shelterName == "" {
			slog.Error("没有找到收容所名", "record", record)
			continue
		}

		shelterID, ok := shelterIDs[shelterName]
		if !ok {
			shelter := &domain.Shelter{
				Name:        shelterName,
				City:        record["城市"],
				Address:     record["地址"],
				Phone:       record["电话"],
				OpeningTime: record["开放时间"],
				ClosingTime: record["关闭时间"],
			}

			if err := r.CreateShelter(shelter); err != nil {
				slog.Error("插入收容所失败", "error", err)
				continue
			}

			shelterID = shelter.ID
			shelterIDs[shelterName] = shelterID
		}

		animal := &domain.Animal{
			ShelterID:   shelterID,
			Name:        record["动物名"],
			Species:     record["物种"],
			Breed:       record["品种"],
			Sex:         record["性别"],
			Sterilized:  record["已绝育"] == "是",
			IsAdoptable: record["可领养"] == "是",
		}

		if birthDate := record["出生日期"]; birthDate != "" {
			parsed, err := time.Parse("2006-01-02", birthDate)
			if err != nil {
				slog.Error("转换出生日期失败", "birthDate", birthDate)
				continue
			}
			animal.BirthDate = &parsed
		}

		if err := r.CreateAnimal(animal); err != nil {
			slog.Error("插入动物失败", "error", err)
			continue
		}

		cnt++
	}

	slog.Info("插入数据完成", "shelters", len(shelterIDs), "animals", cnt)
}
