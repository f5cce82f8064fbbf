package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 头像上传相关常量
const (
	MimeImage     = "image/"
	MaxAvatarSize = 2 << 20 // 2MB
)

var (
	AllowedAvatarExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
)

// 学习历史/活动日历默认参数
const (
	DefaultHistoryLimit      = 50
	StatsRecentActivityLimit = 20
	DefaultActivityWindow    = 365 // 天
)
