// Package metrics Prometheus sayaçlarını tanımlar; /metrics rotası varsayılan registry'yi yayınlar.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FormsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forms_created_total",
		Help: "Oluşturulan form sayısı.",
	})

	ResponsesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "responses_submitted_total",
		Help: "Kaydedilen yanıt sayısı.",
	})

	// ResponseRejections reddedilen gönderimler, hata türüne göre.
	ResponseRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "response_rejections_total",
		Help: "Reddedilen yanıt gönderimleri.",
	}, []string{"kind"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
