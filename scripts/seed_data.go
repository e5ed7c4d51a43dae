// 生成演示数据（院系、教师、学生、课程、选课、考勤、费用）
//
// 会清空报表相关的表，仅用于本地开发和演示环境。
// 同时打印管理员与一名学生的测试令牌，便于直接调用报表接口。
//
// 用法: go run scripts/seed_data.go [-config configs] [-seed 42]

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/model"
	"institute_backend/internal/util"
	"institute_backend/pkg/database"
	"institute_backend/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var courseList = []struct{ name, code string }{
	{"Mathematics I", "MATH101"},
	{"Physics I", "PHY101"},
	{"Computer Science Basics", "CS101"},
	{"Chemistry Basics", "CHEM101"},
	{"English Communication", "ENG101"},
}

var feeItems = []int64{50000, 2000, 5000}

type seeder struct {
	rnd *rand.Rand
}

func (s *seeder) gender() model.Gender {
	if s.rnd.IntN(2) == 0 {
		return model.GenderMale
	}
	return model.GenderFemale
}

func (s *seeder) purge(tx *gorm.DB) error {
	if err := tx.Exec("DELETE FROM course_teachers").Error; err != nil {
		return err
	}
	models := database.Models()
	// 逆序删除，先删子表
	for i := len(models) - 1; i >= 0; i-- {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(models[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) run(tx *gorm.DB) (uint, error) {
	if err := s.purge(tx); err != nil {
		return 0, fmt.Errorf("purge: %w", err)
	}

	dept := model.Department{Name: "Science & Engineering"}
	if err := tx.Create(&dept).Error; err != nil {
		return 0, err
	}

	teachers := make([]model.TeacherProfile, 5)
	for i := range teachers {
		teachers[i] = model.TeacherProfile{
			TeacherCode:   fmt.Sprintf("TCHR%03d", i+1),
			Name:          fmt.Sprintf("Teacher %d", i+1),
			Gender:        s.gender(),
			DepartmentID:  &dept.ID,
			Qualification: []string{"M.Sc", "M.Tech", "PhD"}[s.rnd.IntN(3)],
			Experience:    1 + s.rnd.IntN(15),
			JoinedAt:      time.Now().AddDate(-s.rnd.IntN(10), 0, 0),
		}
	}
	if err := tx.Create(&teachers).Error; err != nil {
		return 0, err
	}

	students := make([]model.StudentProfile, 20)
	for i := range students {
		students[i] = model.StudentProfile{
			StudentCode:  fmt.Sprintf("STD%03d", i+1),
			Name:         fmt.Sprintf("Student %d", i+1),
			Email:        fmt.Sprintf("student%d@example.com", i+1),
			Gender:       s.gender(),
			DepartmentID: &dept.ID,
			JoinedAt:     time.Now().AddDate(0, -s.rnd.IntN(24), 0),
		}
	}
	if err := tx.Create(&students).Error; err != nil {
		return 0, err
	}

	courses := make([]model.Course, len(courseList))
	for i, c := range courseList {
		courses[i] = model.Course{
			Code:         c.code,
			Name:         c.name,
			DepartmentID: &dept.ID,
			Credits:      3 + s.rnd.IntN(2),
			Teachers:     []model.TeacherProfile{teachers[s.rnd.IntN(len(teachers))]},
		}
	}
	if err := tx.Create(&courses).Error; err != nil {
		return 0, err
	}

	// 每名学生选 3 门课
	enrolled := make(map[uint][]uint, len(courses))
	var enrollments []model.Enrollment
	for _, st := range students {
		for _, idx := range s.rnd.Perm(len(courses))[:3] {
			c := courses[idx]
			enrollments = append(enrollments, model.Enrollment{
				StudentID: st.ID,
				CourseID:  c.ID,
				Status:    model.EnrollmentActive,
			})
			enrolled[c.ID] = append(enrolled[c.ID], st.ID)
		}
	}
	if err := tx.Create(&enrollments).Error; err != nil {
		return 0, err
	}

	statuses := []model.AttendanceStatus{model.AttendancePresent, model.AttendanceAbsent, model.AttendanceLate, model.AttendanceExcused}
	for _, c := range courses {
		for day := 0; day < 5; day++ {
			rec := model.AttendanceRecord{
				CourseID: c.ID,
				Date:     time.Now().AddDate(0, 0, -day),
			}
			for _, sid := range enrolled[c.ID] {
				rec.Entries = append(rec.Entries, model.StudentAttendance{
					StudentID: sid,
					Status:    statuses[s.rnd.IntN(len(statuses))],
				})
			}
			if err := tx.Create(&rec).Error; err != nil {
				return 0, err
			}
		}
	}

	total := decimal.Zero
	for _, amount := range feeItems {
		total = total.Add(decimal.NewFromInt(amount))
	}
	for _, st := range students {
		inv := model.FeeInvoice{
			StudentID:   st.ID,
			TotalAmount: total,
			PaidAmount:  decimal.Zero,
			Status:      model.InvoicePending,
		}
		if s.rnd.IntN(2) == 0 {
			inv.Payments = []model.Payment{{Amount: decimal.NewFromInt(30000), Method: "cash"}}
		}
		if err := tx.Create(&inv).Error; err != nil {
			return 0, err
		}
	}

	logger.L().Info("Seed data created",
		zap.Int("teachers", len(teachers)),
		zap.Int("students", len(students)),
		zap.Int("courses", len(courses)),
		zap.Int("enrollments", len(enrollments)),
	)
	return students[0].ID, nil
}

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "随机种子")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	s := &seeder{rnd: rand.New(rand.NewPCG(*seed, *seed))}

	var studentID uint
	err = db.Transaction(func(tx *gorm.DB) error {
		id, err := s.run(tx)
		studentID = id
		return err
	})
	if err != nil {
		log.Fatalf("生成演示数据失败: %v", err)
	}

	if cfg.JWT.Secret == "" {
		log.Println("jwt.secret 为空，跳过测试令牌")
		return
	}
	adminToken, err := util.GenerateJWT(1, model.Admin, "admin@example.com", cfg.JWT.Secret, 24*time.Hour)
	if err != nil {
		log.Fatalf("生成令牌失败: %v", err)
	}
	studentToken, err := util.GenerateJWT(studentID, model.Student, "student1@example.com", cfg.JWT.Secret, 24*time.Hour)
	if err != nil {
		log.Fatalf("生成令牌失败: %v", err)
	}
	fmt.Printf("admin token:   %s\nstudent token: %s\n", adminToken, studentToken)
}
