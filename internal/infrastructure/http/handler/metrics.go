package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 서비스 도메인 메트릭. 요청 단위 메트릭은 echoprometheus 미들웨어가
// 수집하므로 여기서는 도메인 이벤트만 셉니다.
var (
	messagesPosted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "memberchat",
		Name:      "messages_posted_total",
		Help:      "Number of chat messages accepted into the log.",
	})

	membersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "memberchat",
		Name:      "members_registered_total",
		Help:      "Number of successful member registrations.",
	})
)
