// Package marketdate 计算报告所对应的市场日期
package marketdate

import "time"

// KST 固定的 UTC+9 时区，不受夏令时或系统时区影响
var KST = time.FixedZone("KST", 9*60*60)

// Resolve 返回 now 换算到 UTC+9 后减去一天的日期 (YYYY-MM-DD)，
// 即韩国早间运行时对应的美股收盘日
func Resolve(now time.Time) string {
	return now.In(KST).AddDate(0, 0, -1).Format(time.DateOnly)
}

// Today 基于当前系统时间计算市场日期
func Today() string {
	return Resolve(time.Now())
}
