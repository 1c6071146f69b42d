// Package handlers 实现 HTTP 层：请求解析、认证与所有权状态机、错误分类到状态码的映射，
// 以及响应视图的序列化。业务规则委托给 services 层。
package handlers
