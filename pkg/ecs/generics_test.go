package ecs

import "testing"

// 泛型辅助函数测试
// 组件夹具复用 entity_manager_test.go 的 testAnchorComponent / testFadeComponent

func TestGenericAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testAnchorComponent{X: 1, Y: 2})

	anchor, ok := GetComponent[*testAnchorComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find the component")
	}
	if anchor.X != 1 || anchor.Y != 2 {
		t.Errorf("anchor = (%v, %v), want (1, 2)", anchor.X, anchor.Y)
	}

	// 未添加的类型应返回 false
	if _, ok := GetComponent[*testFadeComponent](em, id); ok {
		t.Error("GetComponent should not find a component that was never added")
	}
}

func TestGenericHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testFadeComponent{Alpha: 0.5})
	if !HasComponent[*testFadeComponent](em, id) {
		t.Error("HasComponent should report true after add")
	}

	RemoveComponent[*testFadeComponent](em, id)
	if HasComponent[*testFadeComponent](em, id) {
		t.Error("HasComponent should report false after remove")
	}
}

func TestGenericGetEntitiesWithSortedAndFiltered(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testAnchorComponent{})
	AddComponent(em, id1, &testFadeComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testAnchorComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testAnchorComponent{})
	AddComponent(em, id3, &testFadeComponent{})

	both := GetEntitiesWith2[*testAnchorComponent, *testFadeComponent](em)
	if len(both) != 2 {
		t.Fatalf("expected 2 entities with both components, got %d", len(both))
	}
	// 查询结果必须按 EntityID 升序（系统处理顺序的确定性依赖这一点）
	if both[0] != id1 || both[1] != id3 {
		t.Errorf("expected sorted [%d %d], got %v", id1, id3, both)
	}

	anchors := GetEntitiesWith1[*testAnchorComponent](em)
	if len(anchors) != 3 {
		t.Errorf("expected 3 entities with anchor, got %d", len(anchors))
	}
}

func TestExists(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if !em.Exists(id) {
		t.Error("Exists should report true for a live entity")
	}

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("Exists should report false after cleanup")
	}
}
