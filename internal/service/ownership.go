package service

import "errors"

// ErrSemesterForbidden 访问非本人学期
var ErrSemesterForbidden = errors.New("not authorized to access this semester")

// CheckOwnership 资源归属校验：ownerID 与调用者一致时放行
// 列表与 CGPA 查询本身按 owner 过滤，不经过此检查
func CheckOwnership(ownerID, callerID string) error {
	if ownerID == "" || ownerID != callerID {
		return ErrSemesterForbidden
	}
	return nil
}
