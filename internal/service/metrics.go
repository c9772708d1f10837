package service

import "github.com/prometheus/client_golang/prometheus"

var (
	PurchasesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_purchases_total",
		Help: "Completed property purchases",
	})
	SalesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_sales_total",
		Help: "Completed property sales",
	})
)

func init() {
	prometheus.MustRegister(PurchasesTotal)
	prometheus.MustRegister(SalesTotal)
}
