package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/PlatformTravel/crm-sub000/config"
	authmodels "github.com/PlatformTravel/crm-sub000/internal/api/auth/models"
	crmmodels "github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	"github.com/PlatformTravel/crm-sub000/internal/database"
	"github.com/PlatformTravel/crm-sub000/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Module Auth (tiền tố auth_)
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.LoginAudits = "auth_login_audits"

	// Module CRM (tiền tố crm_)
	global.MongoDB_ColNames.Clients = "crm_clients"
	global.MongoDB_ColNames.Customers = "crm_customers"
	global.MongoDB_ColNames.Assignments = "crm_assignments"
	global.MongoDB_ColNames.CallLogs = "crm_call_logs"
	global.MongoDB_ColNames.Archives = "crm_archives"
	global.MongoDB_ColNames.DailyProgress = "crm_daily_progress"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	// Module Auth
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.LoginAudits), authmodels.LoginAudit{})

	// Module CRM - hai pool số dùng chung model ContactRecord
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Clients), crmmodels.ContactRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Customers), crmmodels.ContactRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Assignments), crmmodels.Assignment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CallLogs), crmmodels.CallLog{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Archives), crmmodels.ArchiveEntry{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DailyProgress), crmmodels.DailyProgress{})

	// Các compound index phục vụ truy vấn phân bổ và lưu trữ
	database.CreateCrmAdditionalIndexes(context.TODO(), db)
}
