package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/see-paw/backend-sub005/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleAdopter,
	domain.RoleStaff,
	domain.RoleAdmin,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

var cities = []string{"广州", "深圳", "珠海", "佛山", "东莞", "中山", "惠州", "江门"}

// 随机生成一个收容所，开放时间固定落在上午，关闭时间落在傍晚之后
func GenerateRandomShelter() *domain.Shelter {
	openingHour := rand.Intn(3) + 8  // 8~10 点开门
	closingHour := rand.Intn(4) + 17 // 17~20 点关门

	city := cities[rand.Intn(len(cities))]
	return &domain.Shelter{
		Name:        city + "动物收容所" + GenerateRandomID(0, 3),
		City:        city,
		Address:     city + "市某某路" + GenerateRandomID(0, 3) + "号",
		Phone:       "1" + GenerateRandomID(0, 10),
		Description: "收容所简介" + GenerateRandomID(10, 5),
		OpeningTime: fmt.Sprintf("%02d:00:00", openingHour),
		ClosingTime: fmt.Sprintf("%02d:00:00", closingHour),
	}
}

var petNames = []string{"旺财", "小白", "豆豆", "毛毛", "球球", "奶茶", "团子", "花卷", "布丁", "年糕"}
var dogBreeds = []string{"中华田园犬", "拉布拉多", "金毛", "柯基", "边牧"}
var catBreeds = []string{"中华田园猫", "英短", "美短", "布偶", "橘猫"}

// 随机生成一只动物并挂到指定收容所下
func GenerateRandomAnimal(shelterID int64) *domain.Animal {
	animal := &domain.Animal{
		ShelterID:   shelterID,
		Name:        petNames[rand.Intn(len(petNames))] + GenerateRandomID(0, 2),
		Sterilized:  rand.Intn(2) == 0,
		Description: "动物简介" + GenerateRandomID(10, 5),
		IsAdoptable: rand.Intn(4) != 0, // 大约四分之三的动物可领养
	}

	if rand.Intn(2) == 0 {
		animal.Species = "狗"
		animal.Breed = dogBreeds[rand.Intn(len(dogBreeds))]
	} else {
		animal.Species = "猫"
		animal.Breed = catBreeds[rand.Intn(len(catBreeds))]
	}

	if rand.Intn(2) == 0 {
		animal.Sex = "雄性"
	} else {
		animal.Sex = "雌性"
	}

	// 出生日期随机回溯 0~10 年，偶尔留空表示未知
	if rand.Intn(5) != 0 {
		birth := time.Now().AddDate(0, 0, -rand.Intn(365*10))
		animal.BirthDate = &birth
	}

	return animal
}

// 随机生成一个未来 7 天内、且不跨天的预约活动时段
func GenerateRandomActivitySlot(animal *domain.Animal, userID int64) *domain.Slot {
	day := time.Now().AddDate(0, 0, rand.Intn(7)+1)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	startHour := rand.Intn(8) + 9 // 9~16 点开始
	start := dayStart.Add(time.Duration(startHour) * time.Hour)
	end := start.Add(time.Duration(rand.Intn(4)+1) * 30 * time.Minute) // 30 分钟到 2 小时

	return domain.NewActivitySlot(animal.ID, animal.ShelterID, userID, start, end)
}
