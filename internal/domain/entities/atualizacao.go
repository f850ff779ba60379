package entities

// Atualizacao is the published app release read from the organizador table
// (single document, id "atualizacao"). The service only compares versions
// and hands out the APK URL; download/install happens on the device.

type Atualizacao struct {
	ID     string `json:"id"`
	Versao string `json:"versao"`
	ApkURL string `json:"apkUrl"`
}
