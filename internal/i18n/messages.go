package i18n

// messages is the full catalog. Keys are grouped per container; the
// "note." group holds the free-text notes written into status logs.
var messages = map[string]map[string]string{
	LangEN: {
		"auth.login_ok":        "Signed in successfully",
		"auth.login_failed":    "Invalid email or password",
		"auth.locked":          "This account has been locked",
		"auth.registered":      "Account created, you can sign in now",
		"auth.register_failed": "Could not create the account",
		"auth.profile_updated": "Profile updated",

		"cart.added":    "Added to cart",
		"cart.already":  "This pet is already in your cart",
		"cart.removed":  "Removed from cart",
		"cart.updated":  "Cart updated",

		"order.placed":             "Order placed successfully",
		"order.place_failed":       "Could not place the order",
		"order.empty":              "Your cart is empty",
		"order.status_updated":     "Order status updated",
		"order.invalid_transition": "This order cannot move to that status",
		"order.cancel_requested":   "Cancellation request sent to the shop",
		"order.no_address":         "Please provide a shipping address",

		"appointment.booked":             "Appointment booked",
		"appointment.book_failed":        "Could not book the appointment",
		"appointment.status_updated":     "Appointment status updated",
		"appointment.invalid_transition": "This appointment cannot move to that status",
		"appointment.cancel_requested":   "Cancellation request sent to the shop",
		"appointment.incomplete":         "Please fill in the booking details first",

		"address.added":       "Address added",
		"address.updated":     "Address updated",
		"address.deleted":     "Address removed",
		"address.default_set": "Default address changed",
		"address.incomplete":  "Please fill in the full address first",

		"product.created":  "Pet listed",
		"product.updated":  "Pet updated",
		"product.retired":  "Pet unlisted",
		"product.restored": "Pet relisted",

		"catalog.saved":    "Catalog entry saved",
		"catalog.retired":  "Catalog entry retired",
		"catalog.restored": "Catalog entry restored",

		"user.created":  "User created",
		"user.updated":  "User updated",
		"user.locked":   "User locked",
		"user.unlocked": "User unlocked",

		"common.not_found":    "The requested record no longer exists",
		"common.server_error": "The server ran into a problem, try again later",
		"common.failed":       "The operation failed, please try again",

		"note.order_placed":       "Customer placed the order",
		"note.appointment_booked": "Customer booked the appointment",
		"note.status_updated":     "Status updated",
	},
	LangVI: {
		"auth.login_ok":        "Đăng nhập thành công",
		"auth.login_failed":    "Email hoặc mật khẩu không đúng",
		"auth.locked":          "Tài khoản đã bị khóa",
		"auth.registered":      "Tạo tài khoản thành công, mời đăng nhập",
		"auth.register_failed": "Không thể tạo tài khoản",
		"auth.profile_updated": "Cập nhật hồ sơ thành công",

		"cart.added":    "Đã thêm vào giỏ hàng",
		"cart.already":  "Bé này đã có trong giỏ hàng",
		"cart.removed":  "Đã xóa khỏi giỏ hàng",
		"cart.updated":  "Đã cập nhật giỏ hàng",

		"order.placed":             "Đặt hàng thành công",
		"order.place_failed":       "Không thể đặt đơn hàng",
		"order.empty":              "Giỏ hàng đang trống",
		"order.status_updated":     "Cập nhật trạng thái đơn hàng thành công",
		"order.invalid_transition": "Đơn hàng không thể chuyển sang trạng thái này",
		"order.cancel_requested":   "Đã gửi yêu cầu hủy đến cửa hàng",
		"order.no_address":         "Vui lòng cung cấp địa chỉ giao hàng",

		"appointment.booked":             "Đặt lịch thành công",
		"appointment.book_failed":        "Không thể đặt lịch hẹn",
		"appointment.status_updated":     "Cập nhật trạng thái lịch hẹn thành công",
		"appointment.invalid_transition": "Lịch hẹn không thể chuyển sang trạng thái này",
		"appointment.cancel_requested":   "Đã gửi yêu cầu hủy lịch đến cửa hàng",
		"appointment.incomplete":         "Vui lòng nhập đầy đủ thông tin đặt lịch",

		"address.added":       "Đã thêm địa chỉ",
		"address.updated":     "Đã cập nhật địa chỉ",
		"address.deleted":     "Đã xóa địa chỉ",
		"address.default_set": "Đã đổi địa chỉ mặc định",
		"address.incomplete":  "Vui lòng nhập đầy đủ địa chỉ",

		"product.created":  "Đã đăng bán thú cưng",
		"product.updated":  "Đã cập nhật thú cưng",
		"product.retired":  "Đã ngừng bán thú cưng",
		"product.restored": "Đã mở bán lại thú cưng",

		"catalog.saved":    "Đã lưu danh mục",
		"catalog.retired":  "Đã ngừng sử dụng danh mục",
		"catalog.restored": "Đã khôi phục danh mục",

		"user.created":  "Đã tạo người dùng",
		"user.updated":  "Đã cập nhật người dùng",
		"user.locked":   "Đã khóa người dùng",
		"user.unlocked": "Đã mở khóa người dùng",

		"common.not_found":    "Dữ liệu không còn tồn tại",
		"common.server_error": "Máy chủ gặp sự cố, vui lòng thử lại sau",
		"common.failed":       "Thao tác thất bại, vui lòng thử lại",

		"note.order_placed":       "Khách hàng đặt đơn",
		"note.appointment_booked": "Khách hàng đặt lịch",
		"note.status_updated":     "Cập nhật trạng thái",
	},
}
