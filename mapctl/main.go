package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"HexVision/mapctl/internal/maptool"
	"HexVision/shared/config"
	"HexVision/shared/hexmap"
)

const usage = `uso: mapctl <comando> [flags]

comandos:
  new     cria um mapa plano
  info    mostra um relatório YAML de um mapa
  list    lista os mapas do armazenamento
  copy    copia mapas entre armazenamentos (diretório ou .db)
  export  grava um mapa num arquivo .hexmap ou .json
  import  importa um arquivo .hexmap ou .json
  delete  remove um mapa
`

func main() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	if err := run(cfg, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		log.Fatalf("[mapctl] %v", err)
	}
}

// defaultTarget é o armazenamento configurado para o editor.
func defaultTarget(cfg *config.Config) string {
	if cfg.StoreBackend == config.BackendSQLite {
		return cfg.LibraryPath
	}
	return cfg.SaveDir
}

func run(cfg *config.Config, cmd string, args []string, out io.Writer) error {
	fset := flag.NewFlagSet(cmd, flag.ContinueOnError)
	store := fset.String("store", defaultTarget(cfg), "diretório de mapas ou biblioteca .db")
	compress := fset.Bool("compress", cfg.Compress, "comprimir com zstd ao gravar")

	switch cmd {
	case "new":
		name := fset.String("name", cfg.MapName, "nome do mapa")
		width := fset.Int("width", cfg.MapWidth, "colunas")
		height := fset.Int("height", cfg.MapHeight, "linhas")
		texture := fset.String("texture", cfg.BaseTexture, "textura base")
		if err := fset.Parse(args); err != nil {
			return err
		}
		s, err := maptool.OpenStore(*store, *compress)
		if err != nil {
			return err
		}
		defer s.Close()
		opts, err := cfg.MapOptions()
		if err != nil {
			return err
		}
		_, err = maptool.Create(s, *name, *width, *height, *texture, opts)
		return err

	case "info":
		patch := fset.Int("patch", cfg.PatchSize, "lado do patch usado na contagem")
		if err := fset.Parse(args); err != nil {
			return err
		}
		rec, err := loadArg(fset, *store, *compress)
		if err != nil {
			return err
		}
		report, err := maptool.Inspect(rec, *patch)
		if err != nil {
			return err
		}
		return maptool.WriteReport(out, report)

	case "list":
		if err := fset.Parse(args); err != nil {
			return err
		}
		s, err := maptool.OpenStore(*store, *compress)
		if err != nil {
			return err
		}
		defer s.Close()
		names, err := s.ListMaps()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil

	case "copy":
		to := fset.String("to", "", "armazenamento de destino")
		if err := fset.Parse(args); err != nil {
			return err
		}
		if *to == "" {
			return fmt.Errorf("copy: -to é obrigatório")
		}
		src, err := maptool.OpenStore(*store, *compress)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := maptool.OpenStore(*to, *compress)
		if err != nil {
			return err
		}
		defer dst.Close()
		copied, err := maptool.Copy(dst, src, fset.Args())
		log.Printf("[mapctl] %d mapa(s) copiado(s) para %s", len(copied), *to)
		return err

	case "export":
		name := fset.String("name", cfg.MapName, "mapa a exportar")
		outPath := fset.String("out", "", "arquivo de saída (.hexmap ou .json)")
		if err := fset.Parse(args); err != nil {
			return err
		}
		if *outPath == "" {
			*outPath = *name + hexmap.FileExt
		}
		s, err := maptool.OpenStore(*store, *compress)
		if err != nil {
			return err
		}
		defer s.Close()
		return maptool.Export(s, *name, *outPath, *compress)

	case "import":
		name := fset.String("name", "", "nome no armazenamento (padrão: o do arquivo)")
		if err := fset.Parse(args); err != nil {
			return err
		}
		if fset.NArg() == 0 {
			return fmt.Errorf("import: informe ao menos um arquivo")
		}
		s, err := maptool.OpenStore(*store, *compress)
		if err != nil {
			return err
		}
		defer s.Close()
		for _, path := range fset.Args() {
			rec, err := maptool.Import(s, path, *name)
			if err != nil {
				return err
			}
			log.Printf("[mapctl] %s importado como %q", path, rec.Name)
		}
		return nil

	case "delete":
		if err := fset.Parse(args); err != nil {
			return err
		}
		if fset.NArg() == 0 {
			return fmt.Errorf("delete: informe o nome do mapa")
		}
		s, err := maptool.OpenStore(*store, *compress)
		if err != nil {
			return err
		}
		defer s.Close()
		for _, name := range fset.Args() {
			if err := maptool.Delete(s, name); err != nil {
				return err
			}
			log.Printf("[mapctl] Mapa %q removido", name)
		}
		return nil
	}

	return fmt.Errorf("comando desconhecido %q\n%s", cmd, strings.TrimSpace(usage))
}

// loadArg lê o mapa do primeiro argumento: um arquivo avulso se tiver extensão
// de mapa, senão um nome no armazenamento.
func loadArg(fset *flag.FlagSet, target string, compress bool) (*hexmap.MapRecord, error) {
	if fset.NArg() == 0 {
		return nil, fmt.Errorf("%s: informe um mapa ou arquivo", fset.Name())
	}
	arg := fset.Arg(0)
	if strings.HasSuffix(arg, hexmap.FileExt) || strings.HasSuffix(arg, ".json") {
		return hexmap.ReadRecordFile(arg)
	}
	s, err := maptool.OpenStore(target, compress)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadMap(arg)
}
