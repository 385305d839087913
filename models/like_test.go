package models

import (
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// 点赞目标二选一由数据库 CHECK 约束兜底, 不只靠服务层校验
func TestLike_TargetCheckConstraint(t *testing.T) {
	s, err := schema.Parse(&Like{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	checks := s.ParseCheckConstraints()
	c, ok := checks["check_like_target"]
	if !ok {
		t.Fatalf("check_like_target constraint missing, got %v", checks)
	}
	if !strings.Contains(c.Constraint, "post_id") || !strings.Contains(c.Constraint, "comment_id") {
		t.Fatalf("constraint must reference both targets: %q", c.Constraint)
	}
}

func TestLike_UniqueIndexesPerTarget(t *testing.T) {
	s, err := schema.Parse(&Like{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	indexes := s.ParseIndexes()
	names := make(map[string]bool, len(indexes))
	for _, idx := range indexes {
		if idx.Class == "UNIQUE" {
			names[idx.Name] = true
		}
	}
	if !names["uk_user_post"] || !names["uk_user_comment"] {
		t.Fatalf("expected unique indexes uk_user_post and uk_user_comment, got %v", names)
	}
}
