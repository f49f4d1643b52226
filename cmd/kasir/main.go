// Command kasir is the terminal cashier: it drives the checkout workflow
// (catalog refresh, line-item editing, submission, archival) against a
// running backend.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"mbg-project/internal/checkout"
	"mbg-project/internal/client"
	"mbg-project/internal/config"
	"mbg-project/internal/history"
	"mbg-project/internal/models"
)

func main() {
	cfg := config.LoadConfig()
	ctx := context.Background()

	api := client.New(cfg.Client)
	store, err := history.NewRedisStore(cfg.Redis.Addr)
	if err != nil {
		log.Fatalf("failed to connect history store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("closing history store: %v", err)
		}
	}()

	catalog := checkout.NewCatalog(api)
	if err := catalog.Refresh(ctx); err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	co := checkout.New(api, store, catalog)
	cart := checkout.NewCart()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("kasir siap. ketik 'bantuan' untuk daftar perintah.")
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		args := strings.Fields(in.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "bantuan":
			printHelp()
		case "muat":
			if err := catalog.Refresh(ctx); err != nil {
				fmt.Printf("gagal memuat katalog: %v\n", err)
			}
		case "produk":
			for _, p := range catalog.Products() {
				fmt.Printf("%s  %-20s harga %d  stok %d\n", p.ID, p.Name, p.Price, p.Stock)
			}
		case "pelanggan":
			for _, c := range catalog.Customers() {
				fmt.Printf("%s  %s (%s)\n", c.ID, c.Name, c.Email)
			}
		case "daftar":
			for _, p := range catalog.Payments() {
				fmt.Printf("%s  pelanggan %s  total %d\n", p.ID, p.CustomerID, p.Total)
			}
		case "keranjang":
			for i, line := range cart.Lines() {
				fmt.Printf("%d. %s x%d = %d\n", i+1, line.Name, line.Quantity, line.Subtotal)
			}
			fmt.Printf("total: %d\n", cart.Total())
		case "tambah":
			cart.AddLine()
			fmt.Printf("baris %d ditambahkan\n", cart.Len())
		case "pilih":
			if len(args) != 3 {
				fmt.Println("pakai: pilih <baris> <id_produk>")
				continue
			}
			index := parseIndex(args[1])
			if err := cart.SetProduct(catalog, index, args[2]); err != nil {
				fmt.Println(err)
			}
		case "jumlah":
			if len(args) != 3 {
				fmt.Println("pakai: jumlah <baris> <qty>")
				continue
			}
			index := parseIndex(args[1])
			qty, _ := strconv.Atoi(args[2])
			warning, err := cart.SetQuantity(catalog, index, qty)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if warning != nil {
				fmt.Printf("jumlah melebihi stok: %s\n", warning)
			}
		case "hapus":
			if len(args) != 2 {
				fmt.Println("pakai: hapus <baris>")
				continue
			}
			if !confirm(in, "hapus produk ini dari daftar?") {
				continue
			}
			if err := cart.RemoveLine(parseIndex(args[1])); err != nil {
				fmt.Println(err)
			}
		case "bayar":
			if len(args) != 2 {
				fmt.Println("pakai: bayar <id_pelanggan>")
				continue
			}
			if !confirm(in, "yakin ingin menyimpan pembayaran ini?") {
				continue
			}
			payment, err := co.Submit(ctx, args[1], cart.Lines())
			if err != nil {
				fmt.Printf("gagal menyimpan: %v\n", err)
				continue
			}
			fmt.Printf("pembayaran %s tersimpan, total %d\n", payment.ID, payment.Total)
			cart = checkout.NewCart()
			if err := catalog.Refresh(ctx); err != nil {
				fmt.Printf("gagal memuat ulang katalog: %v\n", err)
			}
		case "selesai":
			if len(args) != 2 {
				fmt.Println("pakai: selesai <id_pembayaran>")
				continue
			}
			if !confirm(in, fmt.Sprintf("yakin ingin menyelesaikan pembayaran %s?", args[1])) {
				continue
			}
			payment, ok := findPayment(catalog, args[1])
			if !ok {
				fmt.Println("pembayaran tidak ditemukan")
				continue
			}
			record, err := co.Archive(ctx, payment)
			if err != nil {
				fmt.Printf("gagal menyelesaikan: %v\n", err)
				continue
			}
			fmt.Printf("pembayaran %s selesai (%s)\n", record.ID, record.CustomerName)
			if err := catalog.Refresh(ctx); err != nil {
				fmt.Printf("gagal memuat ulang katalog: %v\n", err)
			}
		case "riwayat":
			records, err := store.List(ctx)
			if err != nil {
				fmt.Printf("gagal membaca riwayat: %v\n", err)
				continue
			}
			for _, rec := range records {
				fmt.Printf("%s  %s  total %d  %s\n", rec.ID, rec.CustomerName, rec.Total, rec.Status)
			}
		case "keluar":
			return
		default:
			fmt.Println("perintah tidak dikenal, ketik 'bantuan'")
		}
	}
}

func printHelp() {
	fmt.Println(`perintah:
  produk | pelanggan | daftar | riwayat | keranjang
  tambah                 tambah baris kosong
  pilih <baris> <id>     pilih produk untuk baris
  jumlah <baris> <qty>   ubah jumlah (dibatasi stok)
  hapus <baris>          hapus baris
  bayar <id_pelanggan>   proses pembayaran
  selesai <id>           arsipkan pembayaran
  muat                   muat ulang katalog
  keluar`)
}

func parseIndex(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n - 1
}

func confirm(in *bufio.Scanner, prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return answer == "y" || answer == "ya"
}

func findPayment(cat *checkout.Catalog, id string) (models.Payment, bool) {
	for _, p := range cat.Payments() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Payment{}, false
}
