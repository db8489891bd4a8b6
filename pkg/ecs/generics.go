package ecs

import (
	"reflect"
	"sort"
)

// 泛型查询辅助函数
// 系统代码统一通过这些包级函数访问组件，避免在每个调用点写 reflect.TypeOf

// typeOf 返回组件类型 T 的 reflect.Type（T 通常是 *components.Xxx）
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// sortedIDs 对查询结果按 EntityID 排序
// map 遍历顺序随机，排序后系统处理顺序才是确定的（渲染顺序、测试断言都依赖这一点）
func sortedIDs(ids []EntityID) []EntityID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GetEntitiesWith1 查询拥有 T1 组件的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return sortedIDs(em.GetEntitiesWith(typeOf[T1]()))
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return sortedIDs(em.GetEntitiesWith(typeOf[T1](), typeOf[T2]()))
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return sortedIDs(em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]()))
}

// GetEntitiesWith4 查询同时拥有 T1、T2、T3、T4 组件的所有实体
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	return sortedIDs(em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]()))
}
