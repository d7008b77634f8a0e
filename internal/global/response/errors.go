package response

var (
	ErrInvalidRequest = newError(400, "请求参数错误")
	ErrTokenInvalid   = newError(401, "登录状态无效")
	ErrUnauthorized   = newError(401, "未授权")
	ErrForbidden      = newError(403, "无权限访问")
	ErrNotFound       = newError(404, "资源不存在")
	ErrAlreadyExists  = newError(409, "资源已存在")
	ErrOAuthFailed    = newError(502, "第三方登录失败")
	ErrDatabase       = newError(500, "数据库错误")
	ErrInternal       = newError(500, "服务内部错误")
)
