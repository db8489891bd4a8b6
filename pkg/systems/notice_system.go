package systems

import (
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/ecs"
)

// NoticeSystem 短暂提示的倒计时与销毁
type NoticeSystem struct {
	entityManager *ecs.EntityManager
}

// NewNoticeSystem 创建提示系统
func NewNoticeSystem(em *ecs.EntityManager) *NoticeSystem {
	return &NoticeSystem{entityManager: em}
}

// Update 推进所有提示的剩余时间，到期即销毁
func (s *NoticeSystem) Update(dtMs float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.NoticeComponent](s.entityManager) {
		notice, ok := ecs.GetComponent[*components.NoticeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		notice.RemainingMs -= dtMs
		if notice.RemainingMs <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
