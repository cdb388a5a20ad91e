package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMember_Name(t *testing.T) {
	tests := []struct {
		name   string
		member Member
		want   string
	}{
		{name: "Should prefer the display name", member: Member{ID: "U1", DisplayName: "taro", RealName: "Taro Yamada"}, want: "taro"},
		{name: "Should fall back to the real name", member: Member{ID: "U1", RealName: "Taro Yamada"}, want: "Taro Yamada"},
		{name: "Should fall back to the placeholder", member: Member{ID: "U1"}, want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.member.Name())
		})
	}
}
