package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PlatformTravel/crm-sub000/config"
	"github.com/PlatformTravel/crm-sub000/internal/registry"
)

// MongoDB_CRM_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CRM_CollectionName struct {
	Users       string // Tên collection cho người dùng
	LoginAudits string // Tên collection cho nhật ký đăng nhập (append-only)

	Clients       string // Tên collection cho khách hàng tiềm năng (pool số)
	Customers     string // Tên collection cho khách hàng hiện hữu
	Assignments   string // Tên collection cho phân bổ số theo agent
	CallLogs      string // Tên collection cho lịch sử cuộc gọi
	Archives      string // Tên collection cho bản ghi lưu trữ
	DailyProgress string // Tên collection cho tiến độ gọi theo ngày
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CRM_CollectionName{}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
