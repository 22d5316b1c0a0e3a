package vehicle

// Status 车辆租赁状态。不单独持久化：RentalDays == 0 即 Available，
// 否则 Rented。
type Status string

const (
	StatusAvailable Status = "available" // 可租
	StatusRented    Status = "rented"    // 已租出
)

// allowTransition 定义租赁状态机的允许流转关系。
// Rented 是终态：本进程生命周期内没有还车/归还流转。
var allowTransition = map[Status][]Status{
	StatusAvailable: {StatusRented},
	StatusRented:    {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
// 注意没有自环：对已租出车辆再次发起租赁同样是非法流转。
func CanTransition(from, to Status) bool {
	allowed, ok := allowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Status 返回车辆当前状态（由 RentalDays 推导）。
func (v *Vehicle) Status() Status {
	if v == nil || v.RentalDays == 0 {
		return StatusAvailable
	}
	return StatusRented
}
