// @title LLTF Contrast Service API
// @version 1.0.0
// @description API для управления перестраиваемым фильтром LLTF Contrast через PE_Filter_SDK и отправки показаний в Kafka.
// @host localhost:8080
// @BasePath /
package main

import "github.com/iwtcode/lltfService/internal/app"

func main() {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
}
