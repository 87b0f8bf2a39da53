// Package interfaces 定义 go-eventbus 的公共接口
//
// 接口文件：
//   - eventbus.go       - 事件总线类型擦除视图与投递观察者
//
// 带类型参数的操作无法出现在接口方法中，由 internal/core/eventbus 以包级泛型函数提供，
// 根包 eventbus 再统一导出。
package interfaces
