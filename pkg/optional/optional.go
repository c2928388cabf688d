// Package optional kısmi güncelleme (PATCH) alanları için "gönderildi / gönderilmedi"
// ayrımını taşıyan değer tipini sağlar.
package optional

// Value bir alanın güncellemede bulunup bulunmadığını ve değerini tutar.
// İstek gövdeleri işaretçi alanlara çözülür ve FromPtr ile çevrilir; bu yüzden
// JSON null ile eksik anahtar aynı anlama gelir.
type Value[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr nil olmayan işaretçiyi dolu değere çevirir.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Value[T]) IsSet() bool { return o.set }

func (o Value[T]) Get() (T, bool) { return o.value, o.set }
