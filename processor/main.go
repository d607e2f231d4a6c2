package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/repositories"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Standalone bulk loader: drop item spreadsheets into the unprocessed folder
// and run this. Each file is imported, moved to the processed folder, and an
// import summary is mailed when SMTP is configured.

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("❌ Gagal konek ke database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}

	idgen.Init()

	fmt.Println("🚀 Processor import berjalan...")

	processAllFiles(db)

	fmt.Println("✅ Semua file diproses!")
}

func processAllFiles(db *gorm.DB) {
	files, err := os.ReadDir(config.ImportDir)
	if err != nil {
		log.Println("❌ Gagal membaca folder:", err)
		return
	}

	repo := repositories.NewTransferRepository(db)

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".xlsx" && ext != ".xls" && ext != ".csv" {
			continue
		}

		filePath := filepath.Join(config.ImportDir, file.Name())
		fmt.Println("📂 Memproses:", filePath)

		result, err := repo.ImportItems(filePath)
		if err != nil {
			// Leave the file in place so a fixed copy can be retried.
			log.Printf("❌ Import gagal untuk %s: %v", file.Name(), err)
			continue
		}

		processedPath := filepath.Join(config.ProcessedDir, file.Name())
		if err := copyAndDeleteFile(filePath, processedPath); err != nil {
			log.Printf("❌ Gagal memindahkan file ke folder processed: %v", err)
			continue
		}

		summary := fmt.Sprintf("%d rows imported, %d skipped from %s", result.Imported, result.Skipped, file.Name())
		fmt.Println("✅", summary)

		if err := sendEmailNotification(config.ReportEmails, file.Name(), summary); err != nil {
			log.Printf("email notification failed: %v", err)
		}
	}
}

func copyAndDeleteFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	_, err = io.Copy(destinationFile, sourceFile)
	if err != nil {
		return err
	}

	return os.Remove(src)
}

func sendEmailNotification(toEmails []string, filename, summary string) error {
	if config.SMTPHost == "" || len(toEmails) == 0 {
		return nil
	}

	subject := "📦 Stock import " + filename
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Stock import completed</h3>
				<p><strong>%s</strong></p>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, summary)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Gagal mengirim email:", err)
		return err
	}

	fmt.Println("✅ Email notifikasi terkirim ke:", toEmails)
	return nil
}
