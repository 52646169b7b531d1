package ports

// MaxPasswordBytes คือความยาวสูงสุดที่ bcrypt รับได้
const MaxPasswordBytes = 72

// PasswordHasher แปลง plaintext password เป็น hash และตรวจสอบ
type PasswordHasher interface {
	Make(plain string) (string, error)
	Check(hash, plain string) bool
}
