package menu

import (
	"context"
	"fmt"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/presentation"
)

func (m *Menu) artistActions() []action {
	return []action{
		{"Exibir Artistas", func(ctx context.Context) error { return m.show(ctx, app.DomainArtists) }},
		{"Cadastrar Artista", m.registerArtist},
		{"Remover Artista", m.deleteArtist},
		{"Atualizar Artista", m.updateArtist},
		{"Buscar Artistas por Camarim", m.findArtistsByRoom},
		{"Vincular Artista a Camarim", m.linkArtist},
		{"Desvincular Artista", m.unlinkArtist},
	}
}

func (m *Menu) registerArtist(ctx context.Context) error {
	m.header("Cadastrar Artista")
	name, err := m.readText("Nome do Artista: ")
	if err != nil {
		return err
	}
	roomID, err := m.readInt("ID do Camarim (0 para nenhum): ")
	if err != nil {
		return err
	}
	id, err := m.app.RegisterArtist(ctx, name, roomID)
	if err != nil {
		return err
	}
	m.ok("Artista cadastrado com ID: %d", id)
	return nil
}

func (m *Menu) deleteArtist(ctx context.Context) error {
	id, err := m.readInt("Digite o ID do artista: ")
	if err != nil {
		return err
	}
	if err := m.app.DeleteArtist(ctx, id); err != nil {
		return err
	}
	m.ok("Artista removido com sucesso!")
	return nil
}

func (m *Menu) updateArtist(ctx context.Context) error {
	id, err := m.readInt("ID do Artista: ")
	if err != nil {
		return err
	}
	name, err := m.readText("Novo Nome: ")
	if err != nil {
		return err
	}
	roomID, err := m.readInt("Novo ID do Camarim (0 para nenhum): ")
	if err != nil {
		return err
	}
	if err := m.app.UpdateArtist(ctx, id, name, roomID); err != nil {
		return err
	}
	m.ok("Artista atualizado com sucesso!")
	return nil
}

func (m *Menu) findArtistsByRoom(context.Context) error {
	roomID, err := m.readInt("ID do Camarim: ")
	if err != nil {
		return err
	}
	m.println("")
	m.print(presentation.ArtistsText(
		fmt.Sprintf("Artistas do Camarim %d", roomID),
		"Nenhum artista encontrado para este camarim.",
		m.app.Artists.FindByDressingRoom(roomID),
	))
	return nil
}

func (m *Menu) linkArtist(ctx context.Context) error {
	artistID, err := m.readInt("ID do Artista: ")
	if err != nil {
		return err
	}
	roomID, err := m.readInt("ID do Camarim: ")
	if err != nil {
		return err
	}
	if err := m.app.LinkArtistToRoom(ctx, artistID, roomID); err != nil {
		return err
	}
	m.ok("Artista %d vinculado ao camarim %d!", artistID, roomID)
	return nil
}

func (m *Menu) unlinkArtist(ctx context.Context) error {
	artistID, err := m.readInt("ID do Artista: ")
	if err != nil {
		return err
	}
	if err := m.app.UnlinkArtist(ctx, artistID); err != nil {
		return err
	}
	m.ok("Artista desvinculado!")
	return nil
}
