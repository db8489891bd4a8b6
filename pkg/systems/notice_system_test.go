package systems

import (
	"testing"

	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/entities"
)

func TestNoticeCountdownAndExpiry(t *testing.T) {
	em := ecs.NewEntityManager()
	ns := NewNoticeSystem(em)

	id := entities.NewNoticeEntity(em, config.NoticeNotReached)

	// 未到期时保留
	ns.Update(config.NoticeDurationMillis - 100)
	em.RemoveMarkedEntities()
	if !em.Exists(id) {
		t.Fatal("notice should survive before its duration elapses")
	}

	notice, _ := ecs.GetComponent[*components.NoticeComponent](em, id)
	if notice.RemainingMs != 100 {
		t.Errorf("remaining = %v, want 100", notice.RemainingMs)
	}

	// 到期即销毁
	ns.Update(100)
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("notice should be destroyed once its duration elapses")
	}
}

func TestNoticesExpireIndependently(t *testing.T) {
	em := ecs.NewEntityManager()
	ns := NewNoticeSystem(em)

	early := entities.NewNoticeEntity(em, "a")
	ns.Update(800)
	late := entities.NewNoticeEntity(em, "b")

	ns.Update(config.NoticeDurationMillis - 800)
	em.RemoveMarkedEntities()

	if em.Exists(early) {
		t.Error("earlier notice should be gone")
	}
	if !em.Exists(late) {
		t.Error("later notice should still be alive")
	}
}
